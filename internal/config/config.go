// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string         `toml:"log_level"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Naming   NamingConfig   `toml:"naming"`
	Organize OrganizeConfig `toml:"organize"`
	Database DatabaseConfig `toml:"database"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	Language string `toml:"language"`
}

// NamingConfig selects one template per media type by index into the fixed
// template lists.
type NamingConfig struct {
	TVTemplate    int `toml:"tv_template"`
	MovieTemplate int `toml:"movie_template"`
}

type OrganizeConfig struct {
	Seasons         bool   `toml:"seasons"`
	Movies          bool   `toml:"movies"`
	BaseDir         string `toml:"base_dir"`
	DownloadPosters bool   `toml:"download_posters"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Organize.Seasons = true
	cfg.Organize.Movies = true
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "es-ES"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/rtvsm.db"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
