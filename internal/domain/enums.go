package domain

// FlashcardSource records how a flashcard came to exist.
type FlashcardSource string

const (
	FlashcardSourceAIFull   FlashcardSource = "ai-full"
	FlashcardSourceAIEdited FlashcardSource = "ai-edited"
	FlashcardSourceManual   FlashcardSource = "manual"
)

func (s FlashcardSource) String() string { return string(s) }

func (s FlashcardSource) IsValid() bool {
	switch s {
	case FlashcardSourceAIFull, FlashcardSourceAIEdited, FlashcardSourceManual:
		return true
	}
	return false
}

// RequiresGeneration reports whether a card with this source must reference
// the generation it came from.
func (s FlashcardSource) RequiresGeneration() bool {
	return s == FlashcardSourceAIFull || s == FlashcardSourceAIEdited
}

// FlashcardSort is the column flashcard listings are ordered by (descending).
type FlashcardSort string

const (
	FlashcardSortCreatedAt FlashcardSort = "created_at"
	FlashcardSortUpdatedAt FlashcardSort = "updated_at"
)

func (s FlashcardSort) String() string { return string(s) }

func (s FlashcardSort) IsValid() bool {
	switch s {
	case FlashcardSortCreatedAt, FlashcardSortUpdatedAt:
		return true
	}
	return false
}
