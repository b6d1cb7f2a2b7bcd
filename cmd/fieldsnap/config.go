package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/wordfields/internal/diag"
)

// Config holds the tool's settings. Flags override config file values.
type Config struct {
	Color    string `toml:"color"`     // auto, on, off
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	JSON     bool   `toml:"json"`      // emit the stream as JSON instead of the listing
}

func defaultConfig() Config {
	return Config{
		Color:    "auto",
		LogLevel: "warn",
		JSON:     false,
	}
}

// loadConfig reads the TOML config file when one is given and applies flag
// overrides from cmd.
func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if c, _ := cmd.Flags().GetString("color"); c != "" {
		cfg.Color = c
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	if jsonOut, err := cmd.Flags().GetBool("json"); err == nil && jsonOut {
		cfg.JSON = true
	}

	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return cfg, fmt.Errorf("invalid color mode %q", cfg.Color)
	}

	diag.Enable(os.Stderr, parseLevel(cfg.LogLevel))
	return cfg, nil
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
