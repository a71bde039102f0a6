// Package tmdb provides a client for The Movie Database API.
//
// The client is the metadata collaborator of the rename engine: it turns
// search terms into candidate identities and series IDs into
// season/episode/title maps. Responses are mapped into the typed values of
// internal/media at this boundary; nothing downstream sees raw payloads.
package tmdb

import (
	"strconv"

	"github.com/vicser16/rtvsm/internal/media"
)

// TVResult represents one TV series candidate from a search or detail call.
type TVResult struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FirstAirDate    string `json:"first_air_date"` // "2008-01-20"
	PosterPath      string `json:"poster_path"`    // "/abc123.jpg"
	Overview        string `json:"overview"`
	NumberOfSeasons int    `json:"number_of_seasons"` // only on detail responses
}

// Identity maps the result into the typed domain value.
func (r TVResult) Identity() media.Identity {
	return media.Identity{
		Type:        media.TypeTV,
		ID:          r.ID,
		Title:       r.Name,
		Year:        yearOf(r.FirstAirDate),
		SeasonCount: r.NumberOfSeasons,
		PosterPath:  r.PosterPath,
	}
}

// MovieResult represents one movie candidate from a search call.
type MovieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"` // "1994-09-23"
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
}

// Identity maps the result into the typed domain value.
func (r MovieResult) Identity() media.Identity {
	return media.Identity{
		Type:       media.TypeMovie,
		ID:         r.ID,
		Title:      r.Title,
		Year:       yearOf(r.ReleaseDate),
		PosterPath: r.PosterPath,
	}
}

// yearOf extracts the year from a TMDB date string, 0 when absent.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// searchTVResponse is the /search/tv payload.
type searchTVResponse struct {
	Results []TVResult `json:"results"`
}

// searchMovieResponse is the /search/movie payload.
type searchMovieResponse struct {
	Results []MovieResult `json:"results"`
}

// seasonResponse is the /tv/{id}/season/{n} payload.
type seasonResponse struct {
	Episodes []struct {
		EpisodeNumber int    `json:"episode_number"`
		Name          string `json:"name"`
	} `json:"episodes"`
}
