package openrouter

// DefaultSystemPrompt is used when the configuration does not set one.
const DefaultSystemPrompt = "You are an AI tutor that creates flashcards from provided text. " +
	"Your task is to extract key concepts and create question-answer pairs that will help in learning the material. " +
	"Each flashcard should be concise and focus on a single concept. Generate a maximum of 6 flashcards"

// ChatResponse is a validated chat completion.
type ChatResponse struct {
	Answer   string
	Metadata Metadata
}

// Metadata identifies the upstream completion.
type Metadata struct {
	ID      string
	Model   string
	Created int64
}

// ModelParams are the sampling parameters sent with every request.
type ModelParams struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Options changes the client's configuration at runtime.
// Zero-valued fields leave the current value in place.
type Options struct {
	SystemPrompt string
	Model        string
	Temperature  *float64
	MaxTokens    *int
	TopP         *float64
}

// ─── Wire format ────────────────────────────────────────────────────────────

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// envelope mirrors the completion response. Pointer fields detect absence.
type envelope struct {
	ID      *string   `json:"id"`
	Model   *string   `json:"model"`
	Created *float64  `json:"created"`
	Choices *[]choice `json:"choices"`
}

type choice struct {
	Index        *int    `json:"index"`
	FinishReason *string `json:"finish_reason"`
	Message      *struct {
		Role    *string `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
}

// responseFormat is the strict JSON schema the model must answer with.
var responseFormat = map[string]any{
	"type": "json_schema",
	"json_schema": map[string]any{
		"name":   "flashcards",
		"strict": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"flashcards": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"front":  map[string]any{"type": "string"},
							"back":   map[string]any{"type": "string"},
							"source": map[string]any{"type": "string", "enum": []string{"ai-full"}},
						},
						"required":             []string{"front", "back", "source"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []string{"flashcards"},
			"additionalProperties": false,
		},
	},
}
