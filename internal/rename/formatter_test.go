package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vicser16/rtvsm/internal/media"
)

func tvIdentity(title string) media.Identity {
	return media.Identity{Type: media.TypeTV, ID: 1396, Title: title}
}

func TestFormatterEpisode(t *testing.T) {
	tests := []struct {
		name         string
		template     int
		title        string
		season       int
		episode      int
		known        bool
		episodeTitle string
		want         string
	}{
		{
			name:     "default template zero pads",
			template: 0,
			title:    "Breaking Bad",
			season:   3,
			episode:  7,
			known:    true,
			want:     "Breaking Bad S03E07.mkv",
		},
		{
			name:     "unknown episode renders token",
			template: 0,
			title:    "Breaking Bad",
			season:   2,
			known:    false,
			want:     "Breaking Bad S02EXX.mkv",
		},
		{
			name:         "episode title template",
			template:     1,
			title:        "Breaking Bad",
			season:       1,
			episode:      1,
			known:        true,
			episodeTitle: "Pilot",
			want:         "Breaking Bad S01E01 Pilot.mkv",
		},
		{
			name:     "episode title template with empty title trims",
			template: 1,
			title:    "Breaking Bad",
			season:   1,
			episode:  1,
			known:    true,
			want:     "Breaking Bad S01E01.mkv",
		},
		{
			name:     "NxNN template keeps season unpadded",
			template: 2,
			title:    "Breaking Bad",
			season:   1,
			episode:  7,
			known:    true,
			want:     "Breaking Bad - 1x07.mkv",
		},
		{
			name:     "spanish template",
			template: 3,
			title:    "Breaking Bad",
			season:   2,
			episode:  5,
			known:    true,
			want:     "Breaking Bad - Temporada 2 Episodio 05.mkv",
		},
		{
			name:     "title sanitized before substitution",
			template: 0,
			title:    "Alias: Origins",
			season:   1,
			episode:  1,
			known:    true,
			want:     "Alias Origins S01E01.mkv",
		},
		{
			name:     "wide season keeps its digits",
			template: 0,
			title:    "Doctor Who",
			season:   12,
			episode:  3,
			known:    true,
			want:     "Doctor Who S12E03.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.template, 0)
			got := f.Episode(tvIdentity(tt.title), tt.season, tt.episode, tt.known, tt.episodeTitle, "mkv")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatterEpisodeIdempotent(t *testing.T) {
	f := NewFormatter(0, 0)
	id := tvIdentity("Breaking Bad")

	first := f.Episode(id, 3, 7, true, "", "mkv")
	second := f.Episode(id, 3, 7, true, "", "mkv")
	assert.Equal(t, first, second)
}

func TestFormatterMovie(t *testing.T) {
	tests := []struct {
		name     string
		template int
		title    string
		year     int
		ext      string
		want     string
	}{
		{
			name:     "parenthesized year",
			template: 0,
			title:    "Interstellar",
			year:     2014,
			ext:      "mkv",
			want:     "Interstellar (2014).mkv",
		},
		{
			name:     "bracketed year",
			template: 1,
			title:    "Interstellar",
			year:     2014,
			ext:      "mkv",
			want:     "Interstellar [2014].mkv",
		},
		{
			name:     "unknown year drops the segment",
			template: 0,
			title:    "Interstellar",
			year:     0,
			ext:      "mp4",
			want:     "Interstellar.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(0, tt.template)
			id := media.Identity{Type: media.TypeMovie, Title: tt.title, Year: tt.year}
			assert.Equal(t, tt.want, f.Movie(id, tt.ext))
		})
	}
}

func TestNewFormatterOutOfRange(t *testing.T) {
	f := NewFormatter(99, -1)
	got := f.Episode(tvIdentity("Show"), 1, 2, true, "", "mkv")
	assert.Equal(t, "Show S01E02.mkv", got)
}
