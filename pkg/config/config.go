package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Pixelfed struct {
		Instance    string `env:"PIXELFED_INSTANCE" env-default:"https://pixelfed.social"`
		Username    string `env:"PIXELFED_USERNAME" env-default:"abusayed"`
		AccessToken string `env:"PIXELFED_ACCESS_TOKEN"`
	}
	Scraper struct {
		OutputPath     string        `env:"SCRAPER_OUTPUT_PATH" env-default:"pixelfed_images.json"`
		BatchSize      int           `env:"SCRAPER_BATCH_SIZE" env-default:"40"`
		RateLimitDelay time.Duration `env:"SCRAPER_RATE_LIMIT_DELAY" env-default:"1500ms"`
		MaxAttempts    int           `env:"SCRAPER_MAX_ATTEMPTS" env-default:"3"`
		RetryDelay     time.Duration `env:"SCRAPER_RETRY_DELAY" env-default:"5s"`
		APITimeout     time.Duration `env:"SCRAPER_API_TIMEOUT" env-default:"30s"`
		FeedTimeout    time.Duration `env:"SCRAPER_FEED_TIMEOUT" env-default:"60s"`
		UserAgent      string        `env:"SCRAPER_USER_AGENT" env-default:"PixelfedImageScraper/2.0 (+https://github.com)"`
		Schedule       string        `env:"SCRAPER_SCHEDULE"`
	}
	Telegram struct {
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
		User    int64  `env:"TELEGRAM_USER"`
		// APIEndpoint is a format string taking the token and the method.
		APIEndpoint string `env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		cfg.Pixelfed.Instance = strings.TrimRight(cfg.Pixelfed.Instance, "/")
	})
	return cfg, nil
}

// ProfileURL is the public profile page of the scraped account.
func (c *Config) ProfileURL() string {
	return fmt.Sprintf("%s/%s", c.Pixelfed.Instance, c.Pixelfed.Username)
}

// HasToken reports whether API calls may be authenticated.
func (c *Config) HasToken() bool {
	return c.Pixelfed.AccessToken != ""
}

// PostgresEnabled reports whether run history should be recorded.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

// TelegramEnabled reports whether run reports should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && (c.Telegram.Channel != "" || c.Telegram.User != 0)
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
