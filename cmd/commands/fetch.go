package commands

// Command to download a named dataset without plotting it
// Applies the same fail-fast policy as the visualize flow

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

var fetchCmd = &cobra.Command{
	Use:   "fetch <object-key>",
	Short: "Download one dataset from the bucket to the output directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
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

	localPath, err := client.Download(ctx, cfg.Storage.Bucket, args[0], cfg.App.OutputDir)
	if err != nil {
		failDownload(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File downloaded successfully to: %s\n", localPath)
	return nil
}
