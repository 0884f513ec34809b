package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campuskg/hallgraph/internal/catalog"
	"github.com/campuskg/hallgraph/internal/config"
	"github.com/campuskg/hallgraph/internal/housing"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "hallgraph",
		Short: "hallgraph - entity schema registry for the housing knowledge graph",
		Long:  "hallgraph pins a versioned catalog of housing entity shapes, validates candidate records extracted from text, and writes accepted records and hierarchy edges to the graph store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		typesCmd(),
		describeCmd(),
		validateCmd(),
		checkEdgeCmd(),
		ingestCmd(),
		mcpCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newCatalog builds the catalog pinned by configuration. A build failure
// means the shape set itself is unsound and must abort the command.
func newCatalog() (*catalog.Catalog, error) {
	return housing.Build(housing.Version(cfg.Catalog.Version))
}
