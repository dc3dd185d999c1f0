// Command migrate applies the embedded SQL migrations to the configured
// database.
//
//	migrate up        apply all pending migrations
//	migrate down      roll back the most recent migration
//	migrate status    list migrations and whether they are applied
//	migrate version   print the current schema version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/xxxdendexxx/10x-cards/internal/app"
	"github.com/xxxdendexxx/10x-cards/internal/config"
	"github.com/xxxdendexxx/10x-cards/migrations"
)

var (
	timeout time.Duration
	logger  *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall timeout")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  withProvider(up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  withProvider(down),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Args:  cobra.NoArgs,
			RunE:  withProvider(status),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE:  withProvider(version),
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func withProvider(fn func(ctx context.Context, p *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		l, closer := app.NewLogger(cfg.Log)
		defer closer.Close()
		logger = l

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		db, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping db: %w", err)
		}

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("goose new provider: %w", err)
		}
		defer provider.Close()

		return fn(ctx, provider)
	}
}

func up(ctx context.Context, p *goose.Provider) error {
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	if len(results) == 0 {
		logger.Info("no pending migrations")
		return nil
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

func down(ctx context.Context, p *goose.Provider) error {
	r, err := p.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	logger.Info("migration rolled back",
		slog.Int64("version", r.Source.Version),
		slog.String("file", r.Source.Path),
		slog.Duration("duration", r.Duration),
	)
	return nil
}

func status(ctx context.Context, p *goose.Provider) error {
	statuses, err := p.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		applied := "pending"
		if s.State == goose.StateApplied {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%-6d %-30s %s\n", s.Source.Version, s.Source.Path, applied)
	}
	return nil
}

func version(ctx context.Context, p *goose.Provider) error {
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}
	fmt.Println(v)
	return nil
}
