package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicser16/rtvsm/internal/detect"
	"github.com/vicser16/rtvsm/internal/media"
	"github.com/vicser16/rtvsm/internal/organize"
	"github.com/vicser16/rtvsm/internal/rename"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Season 01")
	require.NoError(t, os.MkdirAll(sub, 0755))

	inDir := filepath.Join(sub, "a.mkv")
	require.NoError(t, os.WriteFile(inDir, []byte("x"), 0644))
	direct := filepath.Join(dir, "b.mp4")
	require.NoError(t, os.WriteFile(direct, []byte("x"), 0644))

	files, err := collectFiles([]string{direct, sub})
	require.NoError(t, err)
	assert.Equal(t, []string{direct, inDir}, files, "argument order is preserved")
}

func TestCollectFilesRejectsNonVideo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := collectFiles([]string{path})
	assert.Error(t, err)
}

func TestCollectFilesMissingPath(t *testing.T) {
	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "absent.mkv")})
	assert.Error(t, err)
}

func TestRenderOne(t *testing.T) {
	formatter := rename.NewFormatter(0, 0)
	id := media.Identity{Type: media.TypeTV, Title: "Breaking Bad"}
	seasons := media.SeasonEpisodeMap{
		1: {1: "Pilot"},
		2: {3: "Bit by a Dead Bee"},
	}

	t.Run("detected episode gets canonical name", func(t *testing.T) {
		got := renderOne("/dl/bb.2x03.mkv", id, seasons, detect.Auto, 0, formatter)
		assert.Equal(t, "Breaking Bad S02E03.mkv", got.Name)
		assert.True(t, got.Detected)
		assert.Equal(t, 2, got.Season)
		assert.Equal(t, 3, got.Episode)
	})

	t.Run("single season renders unknown episode token", func(t *testing.T) {
		got := renderOne("/dl/extras.mkv", id, seasons, detect.SingleSeason, 2, formatter)
		assert.Equal(t, "Breaking Bad S02EXX.mkv", got.Name)
		assert.False(t, got.Detected)
	})

	t.Run("auto mode keeps original name on failure", func(t *testing.T) {
		got := renderOne("/dl/behind the scenes.mkv", id, seasons, detect.Auto, 0, formatter)
		assert.Equal(t, "behind the scenes.mkv", got.Name)
		assert.False(t, got.Detected)
	})

	t.Run("movie ignores detection entirely", func(t *testing.T) {
		movie := media.Identity{Type: media.TypeMovie, Title: "Heat", Year: 1995}
		got := renderOne("/dl/heat.1995.mkv", movie, nil, detect.SingleSeason, 1, formatter)
		assert.Equal(t, "Heat (1995).mkv", got.Name)
	})
}

func TestPosterDirFor(t *testing.T) {
	// First collected source path, as collectFiles returns it.
	source := "/dl/incoming/heat.1995.mkv"

	tests := []struct {
		name    string
		baseDir string
		id      media.Identity
		flags   organize.Flags
		want    string
	}{
		{
			name:    "base override creates main folder under it",
			baseDir: "/library",
			id:      media.Identity{Type: media.TypeTV, Title: "Breaking Bad", Year: 2008},
			flags:   organize.Flags{OrganizeSeasons: true},
			want:    "/library/Breaking Bad (2008)",
		},
		{
			name:  "movie folder next to the source",
			id:    media.Identity{Type: media.TypeMovie, Title: "Heat", Year: 1995},
			flags: organize.Flags{OrganizeMovies: true},
			want:  "/dl/incoming/Heat (1995)",
		},
		{
			name:  "tv without override has no poster destination",
			id:    media.Identity{Type: media.TypeTV, Title: "Breaking Bad", Year: 2008},
			flags: organize.Flags{OrganizeSeasons: true},
			want:  "",
		},
		{
			name: "movie organizing disabled has no poster destination",
			id:   media.Identity{Type: media.TypeMovie, Title: "Heat", Year: 1995},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, posterDirFor(tt.baseDir, tt.id, tt.flags, source))
		})
	}
}

func TestPipelineOptsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    pipelineOpts
		want    media.Type
		wantErr bool
	}{
		{
			name: "tv with query",
			opts: pipelineOpts{mediaType: "tv", query: "breaking bad"},
			want: media.TypeTV,
		},
		{
			name: "movie with id",
			opts: pipelineOpts{mediaType: "movie", id: 603},
			want: media.TypeMovie,
		},
		{
			name:    "bad type",
			opts:    pipelineOpts{mediaType: "anime", query: "x"},
			wantErr: true,
		},
		{
			name:    "no selector",
			opts:    pipelineOpts{mediaType: "tv"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
