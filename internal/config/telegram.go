package config

import (
	"os"
	"strings"
)

const (
	EnvTelegramBotToken = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID   = "TELEGRAM_CHAT_ID"
)

// TelegramConfig holds the credentials needed to post into the booking chat.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Complete reports whether both credentials are present.
func (t TelegramConfig) Complete() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// TelegramSource yields the current Telegram credentials. It is consulted on
// every delivery, so a credential removed at runtime shows up on the next
// request instead of at startup only.
type TelegramSource interface {
	Telegram() TelegramConfig
}

// EnvTelegramSource reads the credentials from the process environment.
type EnvTelegramSource struct{}

func (EnvTelegramSource) Telegram() TelegramConfig {
	return TelegramConfig{
		BotToken: strings.TrimSpace(os.Getenv(EnvTelegramBotToken)),
		ChatID:   strings.TrimSpace(os.Getenv(EnvTelegramChatID)),
	}
}

// StaticTelegramSource always returns the wrapped value.
type StaticTelegramSource TelegramConfig

func (s StaticTelegramSource) Telegram() TelegramConfig {
	return TelegramConfig(s)
}
