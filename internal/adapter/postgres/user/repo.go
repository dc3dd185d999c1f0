// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

var columns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a user. Emails are stored lowercased; a duplicate email
// returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Insert("users").
		Columns("email", "password_hash").
		Values(normalizeEmail(email), passwordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", nil)
	}

	return r.getOne(ctx, "user "+email, sql, args)
}

// GetByEmail looks a user up case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"lower(email)": normalizeEmail(email)}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return r.getOne(ctx, "user "+email, sql, args)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return r.getOne(ctx, "user "+id.String(), sql, args)
}

func (r *Repo) getOne(ctx context.Context, entity, sql string, args []any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, nil)
	}
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
