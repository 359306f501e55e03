package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrEmptyToken = errors.New("error getting PR_TELEGRAM_TOKEN: variable not specified or contains an empty string")

type Config struct {
	Env         string // Env is the current environment: local, development, production.
	StoragePath string // StoragePath is the sqlite database file.
	MetricsAddr string // MetricsAddr serves /metrics when not empty.
	API         API
	Cache       Cache
	Checker     Checker
	Tg          Telegram
}

// API describes the remote search/compare service. An empty URL means
// every lookup is served from simulated data.
type API struct {
	URL           string
	SearchTimeout time.Duration
	HealthTimeout time.Duration
}

type Cache struct {
	RedisAddr string        // RedisAddr disables caching when empty.
	TTL       time.Duration // TTL is how long live responses are reused.
}

type Checker struct {
	Interval time.Duration // Interval between two alert checks.
	RPS      float64       // RPS caps live lookups during one check.
}

type Telegram struct {
	Token   string        // Token is an unique telgram bot token.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
// Variables found in a .env file of the working directory are loaded first and never
// override the real environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("error loading .env file: %w", err))
	}

	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("PR")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("STORAGE_PATH", "price-radar.db")
	viper.SetDefault("SEARCH_TIMEOUT", "22s")
	viper.SetDefault("HEALTH_TIMEOUT", "5s")
	viper.SetDefault("CACHE_TTL", "90s")
	viper.SetDefault("CHECK_INTERVAL", "1h")
	viper.SetDefault("CHECK_RPS", 1)
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		MetricsAddr: viper.GetString("METRICS_ADDR"),
		API: API{
			URL:           viper.GetString("API_URL"),
			SearchTimeout: viper.GetDuration("SEARCH_TIMEOUT"),
			HealthTimeout: viper.GetDuration("HEALTH_TIMEOUT"),
		},
		Cache: Cache{
			RedisAddr: viper.GetString("REDIS_ADDR"),
			TTL:       viper.GetDuration("CACHE_TTL"),
		},
		Checker: Checker{
			Interval: viper.GetDuration("CHECK_INTERVAL"),
			RPS:      viper.GetFloat64("CHECK_RPS"),
		},
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
	}
}
