package config

import (
	"fmt"

	"github.com/vicser16/rtvsm/internal/rename"
)

// Validate rejects configurations the rename engine cannot honor.
// Template indexes are checked here so the formatter can index the fixed
// lists without bounds checks.
func (c *Config) Validate() error {
	if c.Naming.TVTemplate < 0 || c.Naming.TVTemplate >= len(rename.TVTemplates) {
		return fmt.Errorf("naming.tv_template %d out of range (0-%d)",
			c.Naming.TVTemplate, len(rename.TVTemplates)-1)
	}
	if c.Naming.MovieTemplate < 0 || c.Naming.MovieTemplate >= len(rename.MovieTemplates) {
		return fmt.Errorf("naming.movie_template %d out of range (0-%d)",
			c.Naming.MovieTemplate, len(rename.MovieTemplates)-1)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q invalid (debug, info, warn, error)", c.LogLevel)
	}
	return nil
}
