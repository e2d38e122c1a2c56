package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

const Version = "1.0.0"

const (
	DefaultBaseURL  = "https://api.prelude.com"
	DefaultTimeoutS = 30

	UserAgent = "prelude-go-sdk/" + Version
)

// API endpoints
const (
	EndpointLookup            = "/v2/lookup"
	EndpointTransactional     = "/v2/transactional"
	EndpointVerification      = "/v2/verification"
	EndpointVerificationCheck = "/v2/verification/check"
	EndpointWatchEvent        = "/v2/watch/event"
	EndpointWatchFeedback     = "/v2/watch/feedback"
	EndpointWatchPredict      = "/v2/watch/predict"
)

// Default verification options
const (
	DefaultCodeLength    = 6
	DefaultExpiryMinutes = 10
	DefaultMaxAttempts   = 3
)

type Config struct {
	APIKey        string `env:"PRELUDE_API_KEY,required"`
	BaseURL       string `env:"PRELUDE_BASE_URL" envDefault:"https://api.prelude.com"`
	TimeoutS      int    `env:"PRELUDE_TIMEOUT_S" envDefault:"30"`
	WebhookSecret string `env:"PRELUDE_WEBHOOK_SECRET"`
	LogLevel      string `env:"PRELUDE_LOG_LEVEL" envDefault:"info"`
	AppEnv        string `env:"PRELUDE_APP_ENV" envDefault:"production"`
}

// Default returns a Config for the given API key with library defaults
// applied.
func Default(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		BaseURL:  DefaultBaseURL,
		TimeoutS: DefaultTimeoutS,
		LogLevel: "info",
		AppEnv:   "production",
	}
}

func FromEnv() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.FromEnv: %w", err)
	}
	return &cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}
