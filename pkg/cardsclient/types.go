package cardsclient

import "time"

// Card sources accepted by the API.
const (
	SourceAIFull   = "ai-full"
	SourceAIEdited = "ai-edited"
	SourceManual   = "manual"
)

// User is the account returned with a token pair.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Tokens is the response of register, login and refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Proposal is an AI-suggested card returned by Generate.
type Proposal struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
}

// GenerateResult is the response of POST /api/generate.
type GenerateResult struct {
	GenerationID   int64      `json:"generation_id"`
	GeneratedCount int        `json:"generated_count"`
	Flashcards     []Proposal `json:"flashcards"`
}

// Generation is a stored generation record.
type Generation struct {
	ID               int64     `json:"id"`
	Model            string    `json:"model"`
	SourceTextHash   string    `json:"source_text_hash"`
	SourceTextLength int       `json:"source_text_length"`
	DurationMs       int64     `json:"generation_duration"`
	GeneratedCount   int       `json:"generated_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewFlashcard is one card in a create request.
type NewFlashcard struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	Source       string `json:"source"`
	GenerationID *int64 `json:"generation_id"`
}

// Flashcard is a persisted card.
type Flashcard struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Source       string    `json:"source"`
	GenerationID *int64    `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FlashcardUpdate is a partial update. Nil fields are not sent.
// ClearGenerationID sends an explicit null and wins over GenerationID.
type FlashcardUpdate struct {
	Front             *string
	Back              *string
	Source            *string
	GenerationID      *int64
	ClearGenerationID bool
}

func (u FlashcardUpdate) body() map[string]any {
	m := make(map[string]any, 4)
	if u.Front != nil {
		m["front"] = *u.Front
	}
	if u.Back != nil {
		m["back"] = *u.Back
	}
	if u.Source != nil {
		m["source"] = *u.Source
	}
	switch {
	case u.ClearGenerationID:
		m["generation_id"] = nil
	case u.GenerationID != nil:
		m["generation_id"] = *u.GenerationID
	}
	return m
}

// ListParams selects a page of flashcards. Zero values are omitted and the
// server applies its defaults.
type ListParams struct {
	Page     int
	PageSize int
	SortBy   string
	Filter   string
}

// Pagination describes a returned page.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// FlashcardPage is the response of GET /api/flashcards.
type FlashcardPage struct {
	Data       []Flashcard `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// FieldError is one entry of a validation error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}
