package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort string `envconfig:"PORT" default:"3000"`
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir  string `envconfig:"STATIC_DIR" default:"public"`

	// RelayTimeout bounds a single call to the Telegram API.
	RelayTimeout time.Duration `envconfig:"RELAY_TIMEOUT" default:"10s"`

	TelegramAPIBaseURL string `envconfig:"TELEGRAM_API_BASE_URL" default:"https://api.telegram.org"`
}

// LoadDotEnv loads a .env file into the process environment when present.
// Variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	c.TelegramAPIBaseURL = strings.TrimRight(c.TelegramAPIBaseURL, "/")
	if c.RelayTimeout <= 0 {
		c.RelayTimeout = 10 * time.Second
	}

	return &c, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
