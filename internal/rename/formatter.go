// Package rename renders canonical filenames from naming templates.
//
// Rendering never fails: an unknown episode number surfaces as the literal
// token XX, and a template that cannot be substituted falls back to a fixed
// canonical form. Rendering is pure; the same inputs always produce the
// same name.
package rename

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vicser16/rtvsm/internal/media"
)

// UnknownEpisode is substituted for the episode placeholder when the
// episode number could not be detected.
const UnknownEpisode = "XX"

// Formatter renders final base filenames from the configured templates.
type Formatter struct {
	tvTemplate    string
	movieTemplate string
}

// NewFormatter selects one template per media type by index. Indexes are
// validated at config load; out-of-range values fall back to the first
// entry rather than panicking.
func NewFormatter(tvIndex, movieIndex int) *Formatter {
	if tvIndex < 0 || tvIndex >= len(TVTemplates) {
		tvIndex = 0
	}
	if movieIndex < 0 || movieIndex >= len(MovieTemplates) {
		movieIndex = 0
	}
	return &Formatter{
		tvTemplate:    TVTemplates[tvIndex],
		movieTemplate: MovieTemplates[movieIndex],
	}
}

// Episode renders the filename for a series episode. episodeKnown=false
// renders the UnknownEpisode token in place of the episode number.
// ext is taken verbatim from the source file's final dot-suffix.
func (f *Formatter) Episode(id media.Identity, season, episode int, episodeKnown bool, episodeTitle, ext string) string {
	vars := map[string]any{
		"title":         SanitizeFilename(id.Title),
		"season":        season,
		"episode_title": SanitizeFilename(episodeTitle),
	}
	if episodeKnown {
		vars["episode"] = episode
	} else {
		vars["episode"] = UnknownEpisode
	}

	base, ok := applyTemplate(f.tvTemplate, vars)
	if !ok {
		base = fallbackEpisode(id.Title, season, episode, episodeKnown, episodeTitle)
	}
	return withExt(base, ext)
}

// Movie renders the filename for a movie. A zero year skips the template,
// which would otherwise render an empty year segment, and uses the
// title-only fallback.
func (f *Formatter) Movie(id media.Identity, ext string) string {
	if id.Year == 0 {
		return withExt(fallbackMovie(id.Title, 0), ext)
	}
	vars := map[string]any{
		"title": SanitizeFilename(id.Title),
		"year":  id.Year,
	}

	base, ok := applyTemplate(f.movieTemplate, vars)
	if !ok {
		base = fallbackMovie(id.Title, id.Year)
	}
	return withExt(base, ext)
}

// fallbackEpisode is the canonical always-renderable TV form.
func fallbackEpisode(title string, season, episode int, episodeKnown bool, episodeTitle string) string {
	ep := UnknownEpisode
	if episodeKnown {
		ep = fmt.Sprintf("%02d", episode)
	}
	base := fmt.Sprintf("%s S%02dE%s", SanitizeFilename(title), season, ep)
	if episodeTitle != "" {
		base += " " + SanitizeFilename(episodeTitle)
	}
	return base
}

// fallbackMovie is the canonical always-renderable movie form.
func fallbackMovie(title string, year int) string {
	if year == 0 {
		return SanitizeFilename(title)
	}
	return fmt.Sprintf("%s (%d)", SanitizeFilename(title), year)
}

func withExt(base, ext string) string {
	return base + "." + ext
}

// formatPattern matches {name} or {name:02} style placeholders.
var formatPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// applyTemplate substitutes vars into template. {name:02} zero-pads integer
// values; other values render with %v. Returns ok=false when the template
// references a placeholder that has no value, signalling the caller to use
// the canonical fallback instead.
func applyTemplate(template string, vars map[string]any) (string, bool) {
	ok := true
	out := formatPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := formatPattern.FindStringSubmatch(match)
		name := parts[1]
		val, found := vars[name]
		if !found {
			ok = false
			return match
		}

		if parts[2] != "" {
			width, err := strconv.Atoi(parts[2])
			if err == nil {
				switch v := val.(type) {
				case int:
					return fmt.Sprintf("%0*d", width, v)
				case int64:
					return fmt.Sprintf("%0*d", width, v)
				}
			}
		}
		return fmt.Sprintf("%v", val)
	})

	return strings.TrimSpace(out), ok
}
