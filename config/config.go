package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/Momofil31/AlphaBetaChess/rules"
)

var ErrInvalidDepth = errors.New("config: search depth must be at least 2")

type Config struct {
	Logs    LogConfig
	Engine  EngineConfig
	Archive ArchiveConfig
}

type LogConfig struct {
	Style string // "console" or "json"
	Level string
}

type EngineConfig struct {
	Depth    int // plies below the root are Depth-1
	MaxPlies int
	Backend  string
	StartFEN string
}

type ArchiveConfig struct {
	Path string // empty disables the archive
}

func Default() *Config {
	return &Config{
		Logs: LogConfig{
			Style: "console",
			Level: "info",
		},
		Engine: EngineConfig{
			Depth:    3,
			MaxPlies: 30,
			Backend:  rules.BackendNotnil,
		},
	}
}

// LoadConfig starts from Default and overrides every field whose environment
// variable is set.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("LOG_STYLE"); v != "" {
		cfg.Logs.Style = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if err := intFromEnv("SEARCH_DEPTH", &cfg.Engine.Depth); err != nil {
		return nil, err
	}
	if err := intFromEnv("MAX_PLIES", &cfg.Engine.MaxPlies); err != nil {
		return nil, err
	}
	if v := os.Getenv("RULES_BACKEND"); v != "" {
		cfg.Engine.Backend = v
	}
	cfg.Engine.StartFEN = os.Getenv("START_FEN")
	cfg.Archive.Path = os.Getenv("ARCHIVE_PATH")

	return cfg, nil
}

func intFromEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: parsing %s: %w", key, err)
	}
	*dst = n
	return nil
}

func (c *Config) Validate() error {
	if c.Engine.Depth < 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidDepth, c.Engine.Depth)
	}
	if c.Engine.MaxPlies < 0 {
		return fmt.Errorf("config: MAX_PLIES must not be negative, got %d", c.Engine.MaxPlies)
	}
	switch c.Engine.Backend {
	case rules.BackendNotnil, rules.BackendDragon:
	default:
		return fmt.Errorf("config: unknown rules backend %q", c.Engine.Backend)
	}
	return nil
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(cfg LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.Style == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
