package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
	"github.com/xxxdendexxx/10x-cards/internal/review"
	"github.com/xxxdendexxx/10x-cards/pkg/cardsclient"
)

// errAborted is returned when input ends before the review is finished.
var errAborted = errors.New("input closed, nothing saved")

type prompter struct {
	sess *review.Session
	in   *bufio.Scanner
	out  io.Writer
}

func newPrompter(sess *review.Session, in io.Reader, out io.Writer) *prompter {
	return &prompter{sess: sess, in: bufio.NewScanner(in), out: out}
}

// Run generates proposals for text, asks for a decision on each one and
// saves the approved proposals.
func (p *prompter) Run(ctx context.Context, text string) error {
	if err := p.sess.Generate(ctx, text); err != nil {
		p.printAPIError(err)
		return fmt.Errorf("generate: %w", err)
	}

	proposals := p.sess.Proposals()
	if len(proposals) == 0 {
		fmt.Fprintln(p.out, "The model returned no flashcards.")
		return nil
	}
	genID, _ := p.sess.GenerationID()
	fmt.Fprintf(p.out, "Generation %d: %d proposals\n", genID, len(proposals))

	for i, prop := range proposals {
		if err := p.decide(i+1, len(proposals), prop); err != nil {
			return err
		}
	}

	if !p.sess.CanSave() {
		fmt.Fprintln(p.out, "Nothing accepted, nothing saved.")
		return nil
	}

	ok, err := p.confirm(fmt.Sprintf("Save %d flashcards? [Y/n] ", p.approvedCount()))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(p.out, "Discarded.")
		return nil
	}

	saved, err := p.sess.SaveApproved(ctx)
	if err != nil {
		p.printAPIError(err)
		return err
	}
	fmt.Fprintf(p.out, "Saved %d flashcards.\n", len(saved))
	return nil
}

func (p *prompter) decide(n, total int, prop review.Proposal) error {
	fmt.Fprintf(p.out, "\n[%d/%d]\n  Front: %s\n  Back:  %s\n", n, total, prop.Front, prop.Back)

	for {
		line, err := p.ask("(a)ccept (r)eject (e)dit (s)kip > ")
		if err != nil {
			return err
		}

		switch strings.ToLower(line) {
		case "a":
			return p.sess.Accept(prop.ID)
		case "r":
			return p.sess.Reject(prop.ID)
		case "s", "":
			return nil
		case "e":
			done, err := p.edit(prop.ID)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		default:
			fmt.Fprintf(p.out, "unknown choice %q\n", line)
		}
	}
}

// edit returns true when the edit was saved and false when it was
// cancelled or rejected by validation.
func (p *prompter) edit(id string) (bool, error) {
	working, err := p.sess.OpenEdit(id)
	if err != nil {
		return false, err
	}

	front, err := p.ask(fmt.Sprintf("  Front [%s]: ", working.Front))
	if err != nil {
		_ = p.sess.CancelEdit()
		return false, err
	}
	if front == "" {
		front = working.Front
	}

	back, err := p.ask(fmt.Sprintf("  Back [%s]: ", working.Back))
	if err != nil {
		_ = p.sess.CancelEdit()
		return false, err
	}
	if back == "" {
		back = working.Back
	}

	if err := p.sess.SaveProposalEdit(front, back); err != nil {
		for _, fe := range domain.FieldErrors(err) {
			fmt.Fprintf(p.out, "  %s: %s\n", fe.Field, fe.Message)
		}
		_ = p.sess.CancelEdit()
		return false, nil
	}
	return true, nil
}

func (p *prompter) confirm(question string) (bool, error) {
	line, err := p.ask(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) approvedCount() int {
	n := 0
	for _, prop := range p.sess.Proposals() {
		if prop.Approved() {
			n++
		}
	}
	return n
}

func (p *prompter) printAPIError(err error) {
	var apiErr *cardsclient.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	for _, d := range apiErr.Details {
		fmt.Fprintf(p.out, "  %s: %s\n", d.Field, d.Message)
	}
}
