package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shanehull/gmpwatch/internal/config"
	"github.com/shanehull/gmpwatch/internal/gmp"
	"github.com/shanehull/gmpwatch/internal/notify"
	"github.com/shanehull/gmpwatch/internal/pipeline"
)

var (
	threshold float64
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "gmpwatch",
	Short: "gmpwatch alerts on IPOs closing today with a grey market premium above a threshold.",
	Long: "gmpwatch reads the ipowatch.in GMP table once and sends a Telegram message\n" +
		"for every offering whose subscription closes today and whose premium is at\n" +
		"or above --threshold percent.\n\n" +
		"Credentials come from TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID (a .env file\n" +
		"in the working directory is read if present). SMTP_SERVER, SMTP_PORT,\n" +
		"SMTP_USER, SMTP_PASS, TO_EMAIL and FROM_EMAIL enable email copies.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", config.DefaultThreshold, "Minimum premium percentage that triggers an alert")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	config.LoadDotEnv(logger)

	cfg, err := config.FromEnv(os.Getenv, threshold)
	if err != nil {
		return err
	}

	senders := notify.Multi{
		notify.Console{W: cmd.OutOrStdout()},
		notify.NewTelegramSender(cfg.Telegram, logger),
	}
	if cfg.Email.Enabled() {
		senders = append(senders, notify.NewEmailSender(cfg.Email, logger))
	}

	p := pipeline.New(
		gmp.NewFetcher(0),
		senders,
		pipeline.WithThreshold(cfg.Threshold),
		pipeline.WithLogger(logger),
	)

	logger.Info("starting GMP watch", "url", gmp.PageURL, "threshold", cfg.Threshold)

	// A failed run has already been alerted and logged; the exit status stays 0.
	if _, err := p.Run(cmd.Context()); err != nil {
		logger.Debug("run ended early", "error", err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
