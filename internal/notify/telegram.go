package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramConfig holds the bot credentials. ChatID is either a numeric chat
// id or a public channel name such as "@ipoalerts".
type TelegramConfig struct {
	Token  string
	ChatID string
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != "" && c.ChatID != ""
}

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender posts messages through the Bot API. The API client is
// created on the first Send and reused afterwards.
type TelegramSender struct {
	cfg    TelegramConfig
	logger *slog.Logger
	newAPI func(token string) (botAPI, error)

	once    sync.Once
	api     botAPI
	initErr error
}

func NewTelegramSender(cfg TelegramConfig, logger *slog.Logger) *TelegramSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &TelegramSender{
		cfg:    cfg,
		logger: logger,
		newAPI: func(token string) (botAPI, error) {
			return tgbotapi.NewBotAPI(token)
		},
	}
}

// Send delivers message to the configured chat. Missing credentials suppress
// delivery with an error log and no returned error.
func (s *TelegramSender) Send(_ context.Context, message string) error {
	if !s.cfg.Enabled() {
		s.logger.Error("telegram credentials missing; message not sent", "message", message)
		return nil
	}

	s.once.Do(func() {
		s.api, s.initErr = s.newAPI(s.cfg.Token)
	})
	if s.initErr != nil {
		return fmt.Errorf("create telegram api: %w", s.initErr)
	}

	if _, err := s.api.Send(s.messageConfig(message)); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	s.logger.Debug("telegram message sent", "chat_id", s.cfg.ChatID)
	return nil
}

func (s *TelegramSender) messageConfig(text string) tgbotapi.MessageConfig {
	chatID := strings.TrimSpace(s.cfg.ChatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(chatID, text)
}
