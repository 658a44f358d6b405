package config

import (
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Storage.Bucket != "datasetentries" {
		t.Fatalf("expected default bucket %q, got %q", "datasetentries", cfg.Storage.Bucket)
	}
	if cfg.App.OutputDir != "data_out" {
		t.Fatalf("expected default output dir %q, got %q", "data_out", cfg.App.OutputDir)
	}
	if cfg.Storage.RequestTimeout != 30 {
		t.Fatalf("expected default timeout 30, got %d", cfg.Storage.RequestTimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "reports")
	t.Setenv("OUTPUT_DIR", "/tmp/plots")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Storage.Bucket != "reports" {
		t.Fatalf("S3_BUCKET_NAME not applied, got %q", cfg.Storage.Bucket)
	}
	if cfg.App.OutputDir != "/tmp/plots" {
		t.Fatalf("OUTPUT_DIR not applied, got %q", cfg.App.OutputDir)
	}
}

func TestTelegramConfig_DeliveryEnabled(t *testing.T) {
	cases := []struct {
		cfg  TelegramConfig
		want bool
	}{
		{TelegramConfig{}, false},
		{TelegramConfig{BotToken: "tok"}, false},
		{TelegramConfig{ChatID: 42}, false},
		{TelegramConfig{BotToken: "tok", ChatID: 42}, true},
	}
	for _, c := range cases {
		if got := c.cfg.DeliveryEnabled(); got != c.want {
			t.Fatalf("DeliveryEnabled(%+v) = %v, expected %v", c.cfg, got, c.want)
		}
	}
}
