// Package generationerror stores failed model calls in generation_error_logs.
package generationerror

import (
	"context"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one error log entry.
func (r *Repo) Create(ctx context.Context, e *domain.GenerationErrorLog) error {
	sql, args, err := postgres.Builder.
		Insert("generation_error_logs").
		Columns("user_id", "model", "source_text_hash", "source_text_length", "error_code", "error_message").
		Values(e.UserID, e.Model, e.SourceTextHash, e.SourceTextLength, e.ErrorCode, e.ErrorMessage).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "generation_error_log", nil)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "generation_error_log", nil)
	}
	return nil
}
