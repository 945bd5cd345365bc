// Package config loads server settings from the environment.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

// Narrator modes
const (
	NarratorModeHTTP     = "http"
	NarratorModeScripted = "scripted"
)

// Config holds every server setting. Flags override these defaults.
type Config struct {
	GRPCPort int `env:"RPG_TALE_GRPC_PORT" envDefault:"50051"`
	HTTPPort int `env:"RPG_TALE_HTTP_PORT" envDefault:"8080"`

	// RedisAddr stores roll records in Redis; empty keeps them in memory.
	RedisAddr string        `env:"RPG_TALE_REDIS_ADDR"`
	RollTTL   time.Duration `env:"RPG_TALE_ROLL_TTL" envDefault:"15m"`

	// SessionIdleTTL drops sessions nobody has touched for this long.
	SessionIdleTTL time.Duration `env:"RPG_TALE_SESSION_IDLE_TTL" envDefault:"24h"`

	NarratorMode    string        `env:"RPG_TALE_NARRATOR_MODE" envDefault:"scripted"`
	NarratorURL     string        `env:"RPG_TALE_NARRATOR_URL"`
	NarratorTimeout time.Duration `env:"RPG_TALE_NARRATOR_TIMEOUT" envDefault:"60s"`

	// DiceSeed makes every roll reproducible when non-zero.
	DiceSeed int64 `env:"RPG_TALE_DICE_SEED"`

	RateLimit float64 `env:"RPG_TALE_RATE_LIMIT" envDefault:"20"`

	OTelEndpoint string `env:"RPG_TALE_OTEL_ENDPOINT"`

	LogLevel  string `env:"RPG_TALE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RPG_TALE_LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file and then the environment.
func Load(dotenvPaths ...string) (*Config, error) {
	for _, path := range dotenvPaths {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load %s", path)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("http_port", c.HTTPPort, 1, 65535, vb)

	switch c.NarratorMode {
	case NarratorModeHTTP:
		errors.ValidateRequired("narrator_url", c.NarratorURL, vb)
	case NarratorModeScripted:
	default:
		vb.Fieldf("narrator_mode", "must be %s or %s", NarratorModeHTTP, NarratorModeScripted)
	}
	if c.NarratorTimeout <= 0 {
		vb.Field("narrator_timeout", "must be positive")
	}
	if c.RollTTL <= 0 {
		vb.Field("roll_ttl", "must be positive")
	}
	if c.SessionIdleTTL <= 0 {
		vb.Field("session_idle_ttl", "must be positive")
	}
	if c.RateLimit <= 0 {
		vb.Field("rate_limit", "must be positive")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		vb.Fieldf("log_format", "must be text or json, got %q", c.LogFormat)
	}

	return vb.Build()
}

// NewLogger builds the process logger from the log settings
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
