package testhelper

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// SeedUser inserts a user with a unique email and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	var u domain.User
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash) VALUES ($1, $2)
		 RETURNING id, email, password_hash, created_at, updated_at`,
		"testuser-"+uuid.NewString()[:8]+"@example.com", "$2a$04$seed",
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedGeneration inserts a generation record for userID and returns its id.
func SeedGeneration(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int64 {
	t.Helper()

	text := strings.Repeat("A", domain.MinSourceTextLength)
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO generations (user_id, model, source_text_hash, source_text_length)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, "test/model", domain.HashSourceText(text), domain.SourceTextLength(text),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedGeneration: %v", err)
	}
	return id
}
