// Package token implements the RefreshToken repository using PostgreSQL.
package token

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

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}
	return row.toDomain(), nil
}

// GetByHash returns an active (non-revoked, non-expired) token by its hash.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}
	return row.toDomain(), nil
}

// RevokeByID revokes one token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	return postgres.MapError(err, "refresh_token", id)
}

// RevokeAllByUser revokes every active token of userID.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", nil)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	return postgres.MapError(err, "refresh_token", nil)
}

// DeleteExpired removes expired or revoked tokens and returns the count.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", nil)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", nil)
	}
	return int(tag.RowsAffected()), nil
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r tokenRow) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}
