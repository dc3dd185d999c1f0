// Command review generates flashcard proposals from a text file, walks
// through them on the terminal and saves the approved ones.
//
//	review --server http://localhost:8080 --email me@example.com --password secret --file notes.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xxxdendexxx/10x-cards/internal/review"
	"github.com/xxxdendexxx/10x-cards/pkg/cardsclient"
)

var (
	serverURL string
	email     string
	password  string
	file      string
	register  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "review",
		Short: "Generate flashcards from a text file and review them",
		Long: `Generate flashcards from a text file and review them.

For every proposal choose:
  a  accept
  r  reject
  e  edit front and back
  s  skip (decide later)

Accepted and edited proposals are saved in one request at the end.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "API base URL")
	rootCmd.Flags().StringVarP(&email, "email", "u", os.Getenv("CARDS_EMAIL"), "Account email")
	rootCmd.Flags().StringVarP(&password, "password", "p", os.Getenv("CARDS_PASSWORD"), "Account password")
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "Source text file (1000-10000 characters)")
	rootCmd.Flags().BoolVar(&register, "register", false, "Create the account before logging in")
	_ = rootCmd.MarkFlagRequired("file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "review: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if email == "" || password == "" {
		return errors.New("--email and --password are required")
	}

	text, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read source text: %w", err)
	}

	ctx := cmd.Context()
	client := cardsclient.New(strings.TrimRight(serverURL, "/"))

	if register {
		if _, err := client.Register(ctx, email, password, password); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	} else if _, err := client.Login(ctx, email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Generating flashcards...")

	p := newPrompter(review.NewSession(client, nil), cmd.InOrStdin(), cmd.OutOrStdout())
	return p.Run(ctx, string(text))
}
