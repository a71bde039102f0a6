// Package media defines the typed domain values the rename engine works on.
// TMDB payloads are mapped into these types at the boundary so the rest of
// the code never touches loosely-keyed JSON maps.
package media

import "fmt"

// Type distinguishes TV series from movies.
type Type string

const (
	TypeTV    Type = "tv"
	TypeMovie Type = "movie"
)

// Identity is the operator-selected series or movie. Immutable after
// selection; everything downstream only reads it.
type Identity struct {
	Type        Type
	ID          int64
	Title       string
	Year        int // 0 when the release date is unknown
	SeasonCount int // TV only
	PosterPath  string
}

// MainFolder returns the library folder name for this identity,
// "Title (Year)" with the year segment omitted when unknown.
func (id Identity) MainFolder() string {
	if id.Year == 0 {
		return id.Title
	}
	return fmt.Sprintf("%s (%d)", id.Title, id.Year)
}

// SeasonEpisodeMap maps season number -> episode number -> episode title.
// It may cover a single season or every known season of a series.
// Read-only to the rename engine.
type SeasonEpisodeMap map[int]map[int]string

// HasSeason reports whether the map covers the given season.
func (m SeasonEpisodeMap) HasSeason(season int) bool {
	_, ok := m[season]
	return ok
}

// Title returns the episode title for (season, episode), or "" when the
// map has no entry. Absence is not an error.
func (m SeasonEpisodeMap) Title(season, episode int) string {
	return m[season][episode]
}

// Seasons returns the number of seasons covered by the map.
func (m SeasonEpisodeMap) Seasons() int {
	return len(m)
}
