package commands

// Command to list datasets available in the configured bucket
// Non-interactive counterpart of the visualize flow's first step

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaytlin4/Data-Visualizer/internal/infra/config"
	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
	"github.com/jaytlin4/Data-Visualizer/internal/storage"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the datasets available in the configured bucket",
	RunE:  runDatasets,
}

func runDatasets(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	files, err := client.ListObjects(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Bucket %q contains no datasets.\n", cfg.Storage.Bucket)
		return nil
	}

	for i, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, f)
	}
	return nil
}
