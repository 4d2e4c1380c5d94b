/*
Package config reads delivery credentials from the environment, optionally
seeded from a .env file.
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shanehull/gmpwatch/internal/notify"
)

const (
	DefaultThreshold = 10.0
	defaultSMTPPort  = 587
)

type Config struct {
	Threshold float64
	Telegram  notify.TelegramConfig
	Email     notify.EmailConfig
}

// LoadDotEnv loads .env files into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadDotEnv(logger *slog.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("no .env file loaded; using process environment", "error", err)
		return
	}
	logger.Debug(".env file loaded")
}

// FromEnv builds a Config from the environment using getenv.
func FromEnv(getenv func(string) string, threshold float64) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	port := defaultSMTPPort
	if raw := getenv("SMTP_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", raw, err)
		}
		port = p
	}

	return &Config{
		Threshold: threshold,
		Telegram: notify.TelegramConfig{
			Token:  getenv("TELEGRAM_BOT_TOKEN"),
			ChatID: getenv("TELEGRAM_CHAT_ID"),
		},
		Email: notify.EmailConfig{
			SMTPServer: getenv("SMTP_SERVER"),
			SMTPPort:   port,
			SMTPUser:   getenv("SMTP_USER"),
			SMTPPass:   getenv("SMTP_PASS"),
			FromEmail:  getenv("FROM_EMAIL"),
			ToEmail:    getenv("TO_EMAIL"),
		},
	}, nil
}
