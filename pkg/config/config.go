package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Instagram struct {
		UserAgent string        `env:"IG_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
		AppID     string        `env:"IG_APP_ID" env-default:"936619743392459"`
		BaseURL   string        `env:"IG_BASE_URL" env-default:"https://www.instagram.com"`
		Timeout   time.Duration `env:"IG_TIMEOUT" env-default:"30s"`
	}
	Search struct {
		ProfilePostsLimit int    `env:"PROFILE_POSTS_LIMIT" env-default:"8"`
		DateOffset        string `env:"DATE_OFFSET" env-default:"Z"`
		ViewsPolicy       string `env:"VIEWS_POLICY" env-default:"omit"`
		LabelStyle        string `env:"LABEL_STYLE" env-default:"title"`
		CarouselWidth     int    `env:"CAROUSEL_WIDTH" env-default:"1080"`
		CarouselHeight    int    `env:"CAROUSEL_HEIGHT" env-default:"1350"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"1"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"2s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"5"`
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
	})
	return cfg, nil
}
