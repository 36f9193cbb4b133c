package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"manhunt/meta"
)

const EnvPrefix = "MANHUNT_"

// Settings tune simulations. Unset variables keep the meta defaults.
type Settings struct {
	Games      int    `env:"GAMES"`
	Seed       uint64 `env:"SEED"`
	MaxMoves   int    `env:"MAX_MOVES"`
	Workers    int    `env:"WORKERS"`
	Setup      string `env:"SETUP"`
	ResultsDir string `env:"RESULTS_DIR"`
	LogLevel   string `env:"LOG_LEVEL"`
}

func DefaultSettings() Settings {
	return Settings{
		Games:      meta.GAMES,
		Seed:       meta.SEED,
		MaxMoves:   meta.MAX_MOVES,
		Workers:    meta.GO_ROUTINES,
		Setup:      meta.SETUP_PATH,
		ResultsDir: meta.RESULTS_DIR,
		LogLevel:   "info",
	}
}

// LoadSettings loads the given env files, .env when none is given, then
// reads MANHUNT_* variables. Missing env files are ignored and variables
// already set in the environment win over the files.
func LoadSettings(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file: %w", err)
	}

	s := DefaultSettings()
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := s.Level(); err != nil {
		return Settings{}, err
	}
	if s.Games <= 0 {
		return Settings{}, fmt.Errorf("%sGAMES must be positive, got %d", EnvPrefix, s.Games)
	}
	return s, nil
}

// Level is the zerolog level named by LogLevel.
func (s Settings) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}
