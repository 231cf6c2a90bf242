package config

import (
	"time"

	"github.com/caarlos0/env/v6"

	"goldapple-bot/internal/logger"
)

type Config struct {
	TelegramBotToken string `env:"BOT_TOKEN,required"`
	// OperatorChatID is the single chat that receives all support traffic.
	OperatorChatID int64 `env:"OPERATOR_CHAT_ID,required"`

	// Sessions
	// SessionTTL closes support sessions idle for longer than this.
	// Zero keeps the historical behavior: sessions never expire.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// Storage
	CatalogDBPath      string `env:"CATALOG_DB_PATH" envDefault:"data/recommendations.db"`
	ContactsFilePath   string `env:"CONTACTS_FILE_PATH" envDefault:"data/contacts.json"`
	TranscriptFilePath string `env:"TRANSCRIPT_FILE_PATH" envDefault:"logs/transcript.jsonl"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFilePath string `env:"LOG_FILE_PATH"`

	// Formatting
	MessageParseMode string `env:"MESSAGE_PARSE_MODE" envDefault:"HTML"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		logger.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
