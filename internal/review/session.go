// Package review holds the client-side state of reviewing generated
// flashcard proposals before they are saved.
package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/pkg/cardsclient"
)

// API is the subset of the REST API a Session talks to.
// *cardsclient.Client implements it.
type API interface {
	Generate(ctx context.Context, sourceText string) (*cardsclient.GenerateResult, error)
	CreateFlashcards(ctx context.Context, cards []cardsclient.NewFlashcard) ([]cardsclient.Flashcard, error)
	UpdateFlashcard(ctx context.Context, id string, u cardsclient.FlashcardUpdate) (*cardsclient.Flashcard, error)
}

// Session is one review of generated proposals. It is not safe for
// concurrent use.
type Session struct {
	api API
	ids IDGenerator

	sourceText   string
	proposals    []Proposal
	generationID *int64

	editing *Proposal

	lastGenerateErr error
}

// NewSession creates an empty session. A nil ids uses NanoIDGenerator.
func NewSession(api API, ids IDGenerator) *Session {
	if ids == nil {
		ids = NanoIDGenerator{}
	}
	return &Session{api: api, ids: ids}
}

// SourceText returns the text of the last Generate call.
func (s *Session) SourceText() string { return s.sourceText }

// GenerationID returns the generation the current proposals came from.
func (s *Session) GenerationID() (int64, bool) {
	if s.generationID == nil {
		return 0, false
	}
	return *s.generationID, true
}

// Proposals returns a copy of the proposal list in response order.
func (s *Session) Proposals() []Proposal {
	out := make([]Proposal, len(s.proposals))
	copy(out, s.proposals)
	return out
}

// LastGenerateError returns the error of the last Generate call, or nil
// if it succeeded.
func (s *Session) LastGenerateError() error { return s.lastGenerateErr }

// Generate requests proposals for sourceText. On failure the previous
// proposals are kept and the error is also available from LastGenerateError.
func (s *Session) Generate(ctx context.Context, sourceText string) error {
	s.sourceText = sourceText
	s.lastGenerateErr = nil

	res, err := s.api.Generate(ctx, sourceText)
	if err != nil {
		s.lastGenerateErr = err
		return err
	}

	proposals := make([]Proposal, len(res.Flashcards))
	for i, p := range res.Flashcards {
		proposals[i] = newProposal(s.ids.NextID(), p)
	}

	genID := res.GenerationID
	s.proposals = proposals
	s.generationID = &genID
	s.editing = nil
	return nil
}

// Accept marks a proposal as accepted.
func (s *Session) Accept(id string) error {
	return s.setStatus(id, StatusAccepted)
}

// Reject marks a proposal as rejected.
func (s *Session) Reject(id string) error {
	return s.setStatus(id, StatusRejected)
}

func (s *Session) setStatus(id string, st Status) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.proposals[i].Status = st
	return nil
}

// OpenEdit opens the edit surface on a copy of the proposal. The stored
// proposal is unchanged until SaveProposalEdit.
func (s *Session) OpenEdit(id string) (Proposal, error) {
	i, err := s.index(id)
	if err != nil {
		return Proposal{}, err
	}
	if s.proposals[i].Status == StatusRejected {
		return Proposal{}, ErrEditRejected
	}

	working := s.proposals[i]
	s.editing = &working
	return working, nil
}

// Editing returns the working copy of the proposal being edited.
func (s *Session) Editing() (Proposal, bool) {
	if s.editing == nil {
		return Proposal{}, false
	}
	return *s.editing, true
}

// SaveProposalEdit stores front and back on the proposal being edited,
// marks it edited and closes the edit surface. Invalid text leaves the
// edit open.
func (s *Session) SaveProposalEdit(front, back string) error {
	if s.editing == nil {
		return ErrNoEditOpen
	}
	if err := validateCardText(front, back); err != nil {
		return err
	}

	i, err := s.index(s.editing.ID)
	if err != nil {
		s.editing = nil
		return err
	}

	p := &s.proposals[i]
	p.Front = front
	p.Back = back
	p.Status = StatusEdited
	p.Source = cardsclient.SourceAIEdited
	s.editing = nil
	return nil
}

// CancelEdit discards the working copy.
func (s *Session) CancelEdit() error {
	if s.editing == nil {
		return ErrNoEditOpen
	}
	s.editing = nil
	return nil
}

// CanSave reports whether at least one proposal is accepted or edited.
func (s *Session) CanSave() bool {
	for _, p := range s.proposals {
		if p.Approved() {
			return true
		}
	}
	return false
}

// SaveApproved sends every accepted or edited proposal, in list order, in a
// single request. On success the session is cleared; on failure it is left
// as it was so the save can be retried.
func (s *Session) SaveApproved(ctx context.Context) ([]cardsclient.Flashcard, error) {
	if s.generationID == nil {
		return nil, ErrNoGenerationID
	}

	var cards []cardsclient.NewFlashcard
	for _, p := range s.proposals {
		if !p.Approved() {
			continue
		}
		genID := *s.generationID
		cards = append(cards, cardsclient.NewFlashcard{
			Front:        p.Front,
			Back:         p.Back,
			Source:       p.Source,
			GenerationID: &genID,
		})
	}
	if len(cards) == 0 {
		return nil, ErrNothingToSave
	}

	saved, err := s.api.CreateFlashcards(ctx, cards)
	if err != nil {
		return nil, fmt.Errorf("review.SaveApproved: %w", err)
	}

	s.proposals = nil
	s.sourceText = ""
	s.generationID = nil
	s.editing = nil
	return saved, nil
}

// SavePersistedEdit updates the text of an already saved flashcard. It
// never touches the proposal list.
func (s *Session) SavePersistedEdit(ctx context.Context, id, front, back string) (*cardsclient.Flashcard, error) {
	if err := validateCardText(front, back); err != nil {
		return nil, err
	}

	card, err := s.api.UpdateFlashcard(ctx, id, cardsclient.FlashcardUpdate{Front: &front, Back: &back})
	if err != nil {
		return nil, fmt.Errorf("review.SavePersistedEdit: %w", err)
	}
	return card, nil
}

func (s *Session) index(id string) (int, error) {
	for i := range s.proposals {
		if s.proposals[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrProposalNotFound, id)
}

func validateCardText(front, back string) error {
	ve := &domain.ValidationError{}

	switch {
	case strings.TrimSpace(front) == "":
		ve.Add("front", "required")
	case utf8.RuneCountInString(front) > domain.MaxFrontLength:
		ve.Add("front", "must be at most 200 characters")
	}
	switch {
	case strings.TrimSpace(back) == "":
		ve.Add("back", "required")
	case utf8.RuneCountInString(back) > domain.MaxBackLength:
		ve.Add("back", "must be at most 500 characters")
	}

	return ve.OrNil()
}
