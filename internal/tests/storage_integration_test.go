//go:build integration

package tests

import (
	"context"
	"testing"

	"github.com/jaytlin4/Data-Visualizer/internal/infra/config"
	"github.com/jaytlin4/Data-Visualizer/internal/storage"
)

// Requires a reachable bucket configured via S3_* environment variables.
// Run with: go test -tags integration ./internal/tests/...

func TestIntegration_Storage_ListAndDownload(t *testing.T) {
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx := context.Background()

	keys, err := client.ListObjects(ctx, cfg.Storage.Bucket)
	if err != nil {
		t.Fatalf("ListObjects failed: %v", err)
	}
	if len(keys) == 0 {
		t.Skipf("bucket %q is empty, nothing to download", cfg.Storage.Bucket)
	}

	localPath, err := client.Download(ctx, cfg.Storage.Bucket, keys[0], t.TempDir())
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if localPath == "" {
		t.Fatalf("expected a local path")
	}
}

func TestIntegration_Storage_DownloadMissingKey(t *testing.T) {
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.Download(context.Background(), cfg.Storage.Bucket,
		"definitely-not-a-real-key.csv", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for nonexistent key")
	}
}
