package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the window and startup settings of the game.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Title      string `toml:"title"`
	FirstScene string `toml:"first_scene"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		Title:      "Tableau",
		FirstScene: "title",
		LogLevel:   "info",
	}
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; an empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	cfg.Width = getEnvAsInt("GAME_WIDTH", cfg.Width)
	cfg.Height = getEnvAsInt("GAME_HEIGHT", cfg.Height)
	cfg.Fullscreen = getEnvAsBool("GAME_FULLSCREEN", cfg.Fullscreen)
	cfg.Title = getEnv("GAME_TITLE", cfg.Title)
	cfg.FirstScene = getEnv("GAME_FIRST_SCENE", cfg.FirstScene)
	cfg.LogLevel = getEnv("GAME_LOG_LEVEL", cfg.LogLevel)

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
