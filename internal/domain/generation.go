package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Source text bounds for a generation request, counted in characters.
const (
	MinSourceTextLength = 1000
	MaxSourceTextLength = 10000
)

// Generation is the bookkeeping record of one generate request.
// It is created with zero counters before the model is called and updated
// once afterwards.
type Generation struct {
	ID               int64
	UserID           uuid.UUID
	Model            string
	SourceTextHash   string
	SourceTextLength int
	DurationMs       int64
	GeneratedCount   int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsIncomplete reports whether the record was never updated after the
// model call, either because the call failed or the update did.
func (g *Generation) IsIncomplete() bool {
	return g.GeneratedCount == 0 && g.DurationMs == 0
}

// NewGeneration builds the initial record for sourceText.
func NewGeneration(userID uuid.UUID, model, sourceText string) *Generation {
	return &Generation{
		UserID:           userID,
		Model:            model,
		SourceTextHash:   HashSourceText(sourceText),
		SourceTextLength: SourceTextLength(sourceText),
	}
}

// GenerationErrorLog records a failed model call for a generation request.
type GenerationErrorLog struct {
	ID               int64
	UserID           uuid.UUID
	Model            string
	SourceTextHash   string
	SourceTextLength int
	ErrorCode        string
	ErrorMessage     string
	CreatedAt        time.Time
}

// HashSourceText returns the lowercase hex SHA-256 of text.
func HashSourceText(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// SourceTextLength counts characters (code points), not bytes.
func SourceTextLength(text string) int {
	return utf8.RuneCountInString(text)
}
