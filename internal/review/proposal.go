package review

import "github.com/xxxdendexxx/10x-cards/pkg/cardsclient"

// Status is the review state of a proposal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusEdited   Status = "edited"
)

// Proposal is an AI-suggested card under review. OriginalFront and
// OriginalBack keep the text as generated.
type Proposal struct {
	ID            string
	Front         string
	Back          string
	OriginalFront string
	OriginalBack  string
	Status        Status
	Source        string
}

// Approved reports whether the proposal will be saved.
func (p Proposal) Approved() bool {
	return p.Status == StatusAccepted || p.Status == StatusEdited
}

func newProposal(id string, p cardsclient.Proposal) Proposal {
	return Proposal{
		ID:            id,
		Front:         p.Front,
		Back:          p.Back,
		OriginalFront: p.Front,
		OriginalBack:  p.Back,
		Status:        StatusPending,
		Source:        cardsclient.SourceAIFull,
	}
}
