// Package flashcard implements the flashcard repository using PostgreSQL.
package flashcard

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

const table = "flashcards"

var columns = []string{
	"id", "user_id", "front", "back", "source", "generation_id", "is_deleted", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateBatch inserts all cards for ownerID in a single statement and
// returns the stored rows in input order. An unknown generation id
// surfaces as domain.ErrNotFound.
func (r *Repo) CreateBatch(ctx context.Context, ownerID uuid.UUID, cards []domain.Flashcard) ([]domain.Flashcard, error) {
	if len(cards) == 0 {
		return []domain.Flashcard{}, nil
	}

	insert := postgres.Builder.
		Insert(table).
		Columns("user_id", "front", "back", "source", "generation_id")
	for _, c := range cards {
		insert = insert.Values(ownerID, c.Front, c.Back, string(c.Source), c.GenerationID)
	}

	sql, args, err := insert.Suffix(returning).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", nil)
	}

	var rows []flashcardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", nil)
	}
	return toDomainSlice(rows), nil
}

// List returns one page of ownerID's non-deleted cards ordered by
// filter.SortBy descending, plus the total number of matching cards.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	where := squirrel.Eq{"user_id": ownerID, "is_deleted": false}
	if filter.Source != nil {
		where["source"] = string(*filter.Source)
	}

	sortBy := filter.SortBy
	if !sortBy.IsValid() {
		sortBy = domain.FlashcardSortCreatedAt
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", nil)
	}
	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", nil)
	}

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(sortBy.String()+" DESC", "id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", nil)
	}

	var rows []flashcardRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", nil)
	}
	return toDomainSlice(rows), int(total), nil
}

// GetByID returns a non-deleted card owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": ownerID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	f := row.toDomain()
	return &f, nil
}

// Update writes the mutable fields of f and returns the stored row.
func (r *Repo) Update(ctx context.Context, f *domain.Flashcard) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("front", f.Front).
		Set("back", f.Back).
		Set("source", string(f.Source)).
		Set("generation_id", f.GenerationID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": f.ID, "user_id": f.UserID, "is_deleted": false}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", f.ID)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", f.ID)
	}
	updated := row.toDomain()
	return &updated, nil
}

// SoftDelete marks the card deleted. Missing, already deleted and foreign
// cards all return domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": ownerID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "flashcard", id)
	}
	return nil
}

// HardDeleteOld permanently removes soft-deleted cards last touched before
// the cutoff and returns how many rows were removed.
func (r *Repo) HardDeleteOld(ctx context.Context, before time.Time) (int64, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"is_deleted": true}).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "flashcard", nil)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "flashcard", nil)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type flashcardRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Front        string    `db:"front"`
	Back         string    `db:"back"`
	Source       string    `db:"source"`
	GenerationID *int64    `db:"generation_id"`
	IsDeleted    bool      `db:"is_deleted"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r flashcardRow) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:           r.ID,
		UserID:       r.UserID,
		Front:        r.Front,
		Back:         r.Back,
		Source:       domain.FlashcardSource(r.Source),
		GenerationID: r.GenerationID,
		IsDeleted:    r.IsDeleted,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainSlice(rows []flashcardRow) []domain.Flashcard {
	out := make([]domain.Flashcard, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
