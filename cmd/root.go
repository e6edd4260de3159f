// Package cmd implements the invoicekeeper command line, the reference
// consumer of the invoice store.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	minioLib "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"invoicekeeper/internal/config"
	"invoicekeeper/internal/identity"
	"invoicekeeper/internal/logger"
	"invoicekeeper/internal/model"
	storageminio "invoicekeeper/internal/storage/minio"
	"invoicekeeper/internal/storage/postgres"
	"invoicekeeper/internal/storage/sqlite"
	"invoicekeeper/internal/store"
)

var userFlag string

var rootCmd = &cobra.Command{
	Use:   "invoicekeeper",
	Short: "Manage per-user invoices from the command line",
	Long: `invoicekeeper keeps every user's invoices in one durable local store
and scopes all reads and writes to the signed-in user. The --user flag plays
the role of the identity provider: pass the same id you signed in with and
you will only ever see or touch your own invoices.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "id of the signed-in user")
}

// app bundles everything a subcommand needs, plus the storage teardown.
type app struct {
	store  *store.Store
	logger *logger.Logger
	close  func() error
}

// newApp loads configuration, opens the configured storage driver, hydrates
// the store and applies the --user flag as the identity signal.
func newApp(ctx context.Context) (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel)

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s, err := store.New(ctx, storage, log.WithComponent("store"))
	if err != nil {
		_ = closeStorage()
		return nil, err
	}

	identity.Apply(ctx, s, identity.Principal{ID: userFlag}, true)

	return &app{store: s, logger: log, close: closeStorage}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (model.Storage, func() error, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		s, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := postgres.New(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "minio":
		mc, err := minioLib.New(cfg.Storage.Minio.Endpoint, &minioLib.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.Minio.AccessKey, cfg.Storage.Minio.SecretKey, ""),
			Secure: cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		s, err := storageminio.NewClient(ctx, mc, cfg.Storage.Minio.Bucket)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// requireUser rejects commands that only make sense for a signed-in user
// before the store does, so the CLI can print an actionable message.
func requireUser() error {
	if userFlag == "" {
		return fmt.Errorf("%w: pass --user", model.ErrNoCurrentUser)
	}
	return nil
}
