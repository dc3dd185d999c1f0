// Package generation implements the generation-record repository using PostgreSQL.
package generation

import (
	"context"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

const table = "generations"

var columns = []string{
	"id", "user_id", "model", "source_text_hash", "source_text_length",
	"duration_ms", "generated_count", "created_at", "updated_at",
}

// Repo provides generation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts g with zeroed counters and returns the stored row.
func (r *Repo) Create(ctx context.Context, g *domain.Generation) (*domain.Generation, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "model", "source_text_hash", "source_text_length", "duration_ms", "generated_count").
		Values(g.UserID, g.Model, g.SourceTextHash, g.SourceTextLength, 0, 0).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "generation", nil)
	}

	var row generationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "generation", nil)
	}
	return row.toDomain(), nil
}

// UpdateMetrics stores the measured duration and the number of proposals.
// Returns domain.ErrNotFound when no record has the given id.
func (r *Repo) UpdateMetrics(ctx context.Context, id int64, durationMs int64, generatedCount int) error {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("duration_ms", durationMs).
		Set("generated_count", generatedCount).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "generation", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "generation", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "generation", id)
	}
	return nil
}

// GetByID returns generation id if it belongs to userID.
// Other users' generations are reported as not found.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("id = ? AND user_id = ?", id, userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "generation", id)
	}

	var row generationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "generation", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type generationRow struct {
	ID               int64     `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Model            string    `db:"model"`
	SourceTextHash   string    `db:"source_text_hash"`
	SourceTextLength int       `db:"source_text_length"`
	DurationMs       int64     `db:"duration_ms"`
	GeneratedCount   int       `db:"generated_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r generationRow) toDomain() *domain.Generation {
	return &domain.Generation{
		ID:               r.ID,
		UserID:           r.UserID,
		Model:            r.Model,
		SourceTextHash:   r.SourceTextHash,
		SourceTextLength: r.SourceTextLength,
		DurationMs:       r.DurationMs,
		GeneratedCount:   r.GeneratedCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
