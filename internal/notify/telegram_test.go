package notify

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{MessageID: len(b.sent)}, nil
}

func newTestTelegram(cfg TelegramConfig, bot *fakeBot, initErr error) (*TelegramSender, *int) {
	s := NewTelegramSender(cfg, slog.New(slog.DiscardHandler))
	constructed := 0
	s.newAPI = func(token string) (botAPI, error) {
		constructed++
		if initErr != nil {
			return nil, initErr
		}
		return bot, nil
	}
	return s, &constructed
}

func TestTelegramSenderLazyClient(t *testing.T) {
	bot := &fakeBot{}
	s, constructed := newTestTelegram(TelegramConfig{Token: "t0ken", ChatID: "-100123"}, bot, nil)
	assert.Zero(t, *constructed)

	require.NoError(t, s.Send(context.Background(), "Acme IPO | Gain: 20%"))
	require.NoError(t, s.Send(context.Background(), "Beta IPO | Gain: 11%"))

	assert.Equal(t, 1, *constructed)
	require.Len(t, bot.sent, 2)
	assert.Equal(t, int64(-100123), bot.sent[0].ChatID)
	assert.Equal(t, "Acme IPO | Gain: 20%", bot.sent[0].Text)
}

func TestTelegramSenderChannelUsername(t *testing.T) {
	bot := &fakeBot{}
	s, _ := newTestTelegram(TelegramConfig{Token: "t0ken", ChatID: "@ipoalerts"}, bot, nil)

	require.NoError(t, s.Send(context.Background(), "hello"))
	require.Len(t, bot.sent, 1)
	assert.Equal(t, "@ipoalerts", bot.sent[0].ChannelUsername)
}

func TestTelegramSenderMissingCredentials(t *testing.T) {
	for _, cfg := range []TelegramConfig{
		{},
		{Token: "t0ken"},
		{ChatID: "42"},
	} {
		bot := &fakeBot{}
		s, constructed := newTestTelegram(cfg, bot, nil)

		assert.NoError(t, s.Send(context.Background(), "hello"))
		assert.Zero(t, *constructed)
		assert.Empty(t, bot.sent)
	}
}

func TestTelegramSenderInitErrorNotRetried(t *testing.T) {
	s, constructed := newTestTelegram(TelegramConfig{Token: "bad", ChatID: "42"}, nil, errors.New("unauthorized"))

	assert.ErrorContains(t, s.Send(context.Background(), "one"), "unauthorized")
	assert.ErrorContains(t, s.Send(context.Background(), "two"), "unauthorized")
	assert.Equal(t, 1, *constructed)
}

func TestTelegramSenderDeliveryError(t *testing.T) {
	bot := &fakeBot{err: errors.New("chat not found")}
	s, _ := newTestTelegram(TelegramConfig{Token: "t0ken", ChatID: "42"}, bot, nil)

	assert.ErrorContains(t, s.Send(context.Background(), "hello"), "chat not found")
}
