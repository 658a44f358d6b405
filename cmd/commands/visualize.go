package commands

// Command running the full interactive flow:
// list bucket -> pick dataset -> download -> parse -> pick column ->
// pick plot type -> render -> emit/deliver the encoded payload.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaytlin4/Data-Visualizer/internal/chart"
	"github.com/jaytlin4/Data-Visualizer/internal/dataset"
	"github.com/jaytlin4/Data-Visualizer/internal/delivery"
	"github.com/jaytlin4/Data-Visualizer/internal/infra/config"
	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
	"github.com/jaytlin4/Data-Visualizer/internal/prompt"
	"github.com/jaytlin4/Data-Visualizer/internal/storage"
)

const invalidNumberMsg = "Invalid selection. Please enter a valid number."

var emitPayload bool

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Interactively pick a dataset, column and plot type, then render a chart",
	Long: `Lists the datasets in the configured bucket, downloads the selected one,
parses it and renders the chosen column as a chart. The finished plot is written
to plot.png in the output directory and returned as a base64 payload.`,
	RunE: runVisualize,
}

func init() {
	visualizeCmd.Flags().BoolVar(&emitPayload, "emit", false,
		"print the base64 payload to stdout after rendering")
}

func runVisualize(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("bucket %q contains no datasets", cfg.Storage.Bucket)
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	fileIdx, err := p.SelectIndex(
		"Select a dataset to visualize:",
		"Enter the number of the dataset: ",
		invalidNumberMsg, files)
	if err != nil {
		return err
	}

	localPath, err := client.Download(ctx, cfg.Storage.Bucket, files[fileIdx], cfg.App.OutputDir)
	if err != nil {
		failDownload(cmd, err)
	}

	table, err := dataset.Load(localPath)
	if err != nil {
		return err
	}

	colIdx, err := p.SelectIndex(
		"Select a column to visualize:",
		"Enter the number of the column: ",
		invalidNumberMsg, table.ColumnNames())
	if err != nil {
		return err
	}
	column := table.ColumnNames()[colIdx]

	token, err := p.SelectToken(
		"Enter the type of plot ('scatter', 'line', 'hist', 'bar', or 'pie'): ",
		"Invalid plot type. Please enter 'scatter', 'line', 'hist', 'bar', or 'pie'.",
		chart.KindTokens())
	if err != nil {
		return err
	}
	kind, _ := chart.ParseKind(token)

	payload, err := chart.Render(table, cfg.App.OutputDir, column, kind)
	if err != nil {
		return err
	}

	if cfg.Telegram.DeliveryEnabled() {
		plotPath := filepath.Join(cfg.App.OutputDir, chart.PlotFileName)
		caption := fmt.Sprintf("%s plot of %s (%s)", kind, column, files[fileIdx])
		if err := delivery.SendChart(cfg.Telegram, plotPath, caption); err != nil {
			logging.LogWarn("Chart delivery failed", zap.Error(err))
		}
	}

	if emitPayload {
		fmt.Fprintln(cmd.OutOrStdout(), payload)
	}

	logging.LogSuccess("Visualization complete",
		zap.String("dataset", files[fileIdx]),
		zap.String("column", column),
		zap.String("plotType", string(kind)),
		zap.Int("payloadBytes", len(payload)))
	return nil
}
