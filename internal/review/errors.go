package review

import "errors"

var (
	ErrNoGenerationID   = errors.New("no generation id available")
	ErrNothingToSave    = errors.New("no accepted or edited proposals to save")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrNoEditOpen       = errors.New("no edit in progress")
	ErrEditRejected     = errors.New("rejected proposals cannot be edited")
)
