// Package notifier posts sale matches to a Telegram channel.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramConfig holds what is needed to post to a channel.
// Channel is either a numeric chat ID or a public "@username".
type TelegramConfig struct {
	Token   string
	Channel string
}

// Telegram posts status updates to a single channel.
type Telegram struct {
	api     telegramAPI
	chatID  int64
	channel string
}

// NewTelegram authenticates with the Bot API and returns a notifier bound to cfg.Channel.
func NewTelegram(cfg TelegramConfig) (*Telegram, error) {
	if cfg.Channel == "" {
		return nil, fmt.Errorf("telegram channel is required")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return newTelegram(api, cfg.Channel), nil
}

func newTelegram(api telegramAPI, channel string) *Telegram {
	t := &Telegram{api: api}
	if id, err := strconv.ParseInt(channel, 10, 64); err == nil {
		t.chatID = id
	} else {
		t.channel = "@" + strings.TrimPrefix(channel, "@")
	}
	return t
}

// Post sends message as one channel post. API errors are returned as is.
func (t *Telegram) Post(_ context.Context, message string) error {
	var msg tgbotapi.MessageConfig
	if t.channel != "" {
		msg = tgbotapi.NewMessageToChannel(t.channel, message)
	} else {
		msg = tgbotapi.NewMessage(t.chatID, message)
	}
	msg.DisableWebPagePreview = true

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Log only records what would have been posted.
type Log struct {
	log *slog.Logger
}

// NewLog creates a dry-run notifier.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log}
}

// Post logs message and never fails.
func (l *Log) Post(_ context.Context, message string) error {
	l.log.Info("dry run: would post", "message", message)
	return nil
}
