package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"manhunt/meta"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, DefaultSettings(), s)
	require.Equal(t, meta.GAMES, s.Games)
	level, err := s.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("MANHUNT_GAMES", "12")
	t.Setenv("MANHUNT_SEED", "42")
	t.Setenv("MANHUNT_LOG_LEVEL", "debug")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 12, s.Games)
	require.Equal(t, uint64(42), s.Seed)
	require.Equal(t, meta.MAX_MOVES, s.MaxMoves)
	level, err := s.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)
}

func TestLoadSettingsFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MANHUNT_MAX_MOVES=77\nMANHUNT_GAMES=3\n"), 0o644))
	t.Setenv("MANHUNT_GAMES", "9")
	t.Cleanup(func() { os.Unsetenv("MANHUNT_MAX_MOVES") })

	s, err := LoadSettings(path)
	require.NoError(t, err)

	require.Equal(t, 77, s.MaxMoves)
	require.Equal(t, 9, s.Games, "Environment should win over the env file")
}

func TestLoadSettingsErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("bad number", func(t *testing.T) {
		t.Setenv("MANHUNT_GAMES", "many")
		_, err := LoadSettings(missing)
		require.Error(t, err)
	})

	t.Run("no games", func(t *testing.T) {
		t.Setenv("MANHUNT_GAMES", "0")
		_, err := LoadSettings(missing)
		require.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("MANHUNT_LOG_LEVEL", "loud")
		_, err := LoadSettings(missing)
		require.Error(t, err)
	})
}
