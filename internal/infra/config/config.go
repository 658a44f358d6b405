package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the explicit configuration passed into the driver at startup.
// Nothing below the command layer reads the environment directly.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	App      AppConfig      `mapstructure:"app"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// StorageConfig configures the S3-compatible object store client.
// Credentials are passed through to the client untouched.
type StorageConfig struct {
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	UseSSL         bool   `mapstructure:"use_ssl"`
	Region         string `mapstructure:"region"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

type AppConfig struct {
	OutputDir string `mapstructure:"output_dir"` // downloads and the generated plot land here
}

// TelegramConfig enables optional chart delivery when both fields are set.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// DeliveryEnabled reports whether the rendered chart should be pushed to Telegram.
func (t TelegramConfig) DeliveryEnabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

// LoadConfig resolves configuration in priority order:
// defaults < config.yaml < .env file < environment < flags.
func LoadConfig() (*Config, error) {
	// Load .env into the process environment so AutomaticEnv sees it.
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // missing config.yaml is fine

	v.AutomaticEnv()
	setupEnvAliases(v)
	setupFlags(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setupEnvAliases(v *viper.Viper) {
	// Storage
	v.BindEnv("storage.bucket", "S3_BUCKET_NAME")
	v.BindEnv("storage.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.access_key", "S3_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "S3_SECRET_KEY")
	v.BindEnv("storage.use_ssl", "S3_USE_SSL")
	v.BindEnv("storage.region", "S3_REGION")
	v.BindEnv("storage.request_timeout", "S3_REQUEST_TIMEOUT")

	// App
	v.BindEnv("app.output_dir", "OUTPUT_DIR")

	// Telegram
	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.bucket", "datasetentries")
	v.SetDefault("storage.endpoint", "s3.amazonaws.com")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.request_timeout", 30)

	v.SetDefault("app.output_dir", "data_out")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
}

func setupFlags(v *viper.Viper) {
	if pflag.CommandLine.Lookup("storage.bucket") == nil {
		pflag.String("storage.bucket", "datasetentries", "Bucket with datasets (env: S3_BUCKET_NAME)")
		pflag.String("storage.endpoint", "s3.amazonaws.com", "S3-compatible endpoint (env: S3_ENDPOINT)")
		pflag.String("storage.region", "", "Bucket region (env: S3_REGION)")
		pflag.Int("storage.request_timeout", 30, "Storage request timeout in seconds (env: S3_REQUEST_TIMEOUT)")
		pflag.String("app.output_dir", "data_out", "Directory for downloads and plot.png (env: OUTPUT_DIR)")
	}
	if !pflag.Parsed() {
		// Cobra owns the subcommand flags; skip anything we did not register.
		pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
		pflag.Parse()
	}
	v.BindPFlags(pflag.CommandLine)
}

func validateConfig(cfg *Config) error {
	if cfg.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required")
	}
	if cfg.App.OutputDir == "" {
		return fmt.Errorf("app.output_dir is required")
	}
	return nil
}
