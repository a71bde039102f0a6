// rtvsm renames TV episode and movie files using TMDB metadata and
// reorganizes them into a series/season folder layout.
package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vicser16/rtvsm/internal/config"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rtvsm",
	Short: "Rename TV shows and movies with TMDB metadata",
	Long: `rtvsm - rename TV shows and movies with TMDB metadata

Detects season and episode numbers from messy filenames, renders
canonical names from configurable templates, and moves files into a
Series/Season folder layout.

Examples:
  rtvsm search --type tv "breaking bad"
  rtvsm preview --query "Breaking Bad" --season 2 ./downloads
  rtvsm rename --query "Breaking Bad" --all-seasons ./downloads
  rtvsm history`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("rtvsm {{.Version}}\n")
}

// loadConfig reads the configured file, falling back to built-in defaults
// when the default path doesn't exist. An explicitly passed path must exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil && errors.Is(err, os.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
		return config.Default(), nil
	}
	return cfg, err
}

// newLogger builds the CLI logger. Verbose wins over the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
