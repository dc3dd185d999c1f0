package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Flashcard field limits, counted in characters.
const (
	MaxFrontLength = 200
	MaxBackLength  = 500
)

// Listing defaults and bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Flashcard is a persisted card owned by a user.
type Flashcard struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Front        string
	Back         string
	Source       FlashcardSource
	GenerationID *int64
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the card's content and the source/generation invariant:
// AI-sourced cards reference a generation, manual cards do not.
// prefix is prepended to field names (e.g. "flashcards[2].").
func (f *Flashcard) Validate(prefix string) []FieldError {
	var errs []FieldError

	switch n := utf8.RuneCountInString(f.Front); {
	case strings.TrimSpace(f.Front) == "":
		errs = append(errs, FieldError{Field: prefix + "front", Message: "required"})
	case n > MaxFrontLength:
		errs = append(errs, FieldError{Field: prefix + "front", Message: "must be at most 200 characters"})
	}

	switch n := utf8.RuneCountInString(f.Back); {
	case strings.TrimSpace(f.Back) == "":
		errs = append(errs, FieldError{Field: prefix + "back", Message: "required"})
	case n > MaxBackLength:
		errs = append(errs, FieldError{Field: prefix + "back", Message: "must be at most 500 characters"})
	}

	if !f.Source.IsValid() {
		errs = append(errs, FieldError{Field: prefix + "source", Message: "must be one of ai-full, ai-edited, manual"})
		return errs
	}

	if f.Source.RequiresGeneration() && f.GenerationID == nil {
		errs = append(errs, FieldError{Field: prefix + "generation_id", Message: "required for ai-full and ai-edited"})
	}
	if !f.Source.RequiresGeneration() && f.GenerationID != nil {
		errs = append(errs, FieldError{Field: prefix + "generation_id", Message: "must be null for manual"})
	}

	return errs
}

// FlashcardProposal is an AI-suggested card that has not been persisted.
type FlashcardProposal struct {
	Front  string          `json:"front"`
	Back   string          `json:"back"`
	Source FlashcardSource `json:"source"`
}

// FlashcardPatch is a partial update. Nil fields are left unchanged.
// SetGenerationID distinguishes "set to null" from "not provided".
type FlashcardPatch struct {
	Front           *string
	Back            *string
	Source          *FlashcardSource
	GenerationID    *int64
	SetGenerationID bool
}

// IsEmpty reports whether the patch changes nothing.
func (p FlashcardPatch) IsEmpty() bool {
	return p.Front == nil && p.Back == nil && p.Source == nil && !p.SetGenerationID
}

// Apply returns a copy of f with the patch applied.
func (p FlashcardPatch) Apply(f Flashcard) Flashcard {
	if p.Front != nil {
		f.Front = *p.Front
	}
	if p.Back != nil {
		f.Back = *p.Back
	}
	if p.Source != nil {
		f.Source = *p.Source
	}
	if p.SetGenerationID {
		f.GenerationID = p.GenerationID
	}
	return f
}

// FlashcardFilter selects a page of a user's non-deleted flashcards.
type FlashcardFilter struct {
	Source   *FlashcardSource
	SortBy   FlashcardSort
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the filter's page.
func (f FlashcardFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Pagination describes a returned page.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}
