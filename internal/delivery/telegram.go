package delivery

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/jaytlin4/Data-Visualizer/internal/infra/config"
	logging "github.com/jaytlin4/Data-Visualizer/internal/infra/log"
)

// SendChart pushes a rendered plot file to the configured Telegram chat as
// a photo. Delivery is optional; the caller decides based on the config.
func SendChart(cfg config.TelegramConfig, plotPath, caption string) error {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}

	photo := tgbotapi.NewPhoto(cfg.ChatID, tgbotapi.FilePath(plotPath))
	photo.Caption = caption

	if _, err := bot.Send(photo); err != nil {
		return fmt.Errorf("failed to send chart to chat %d: %w", cfg.ChatID, err)
	}

	logging.LogSuccess("Chart delivered to Telegram",
		zap.Int64("chatID", cfg.ChatID),
		zap.String("file", plotPath))
	return nil
}
