package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vicser16/rtvsm/internal/config"
	"github.com/vicser16/rtvsm/internal/detect"
	"github.com/vicser16/rtvsm/internal/media"
	"github.com/vicser16/rtvsm/internal/organize"
	"github.com/vicser16/rtvsm/internal/rename"
	"github.com/vicser16/rtvsm/internal/tmdb"
	"github.com/vicser16/rtvsm/pkg/title"
)

var errNoResults = errors.New("no TMDB results for query")

// pipelineOpts are the selection flags shared by preview and rename.
type pipelineOpts struct {
	mediaType  string
	query      string
	id         int64
	season     int
	allSeasons bool
	baseDir    string
}

func (o *pipelineOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.mediaType, "type", "tv", "Media type: tv or movie")
	cmd.Flags().StringVarP(&o.query, "query", "q", "", "Title to search TMDB for")
	cmd.Flags().Int64Var(&o.id, "id", 0, "TMDB ID, bypasses search")
	cmd.Flags().IntVar(&o.season, "season", 1, "Season the files belong to")
	cmd.Flags().BoolVar(&o.allSeasons, "all-seasons", false, "Detect the season per file instead of assuming --season")
	cmd.Flags().StringVar(&o.baseDir, "base-dir", "", "Create the series/movie folder under this directory")
}

func (o *pipelineOpts) validate() (media.Type, error) {
	mediaType := media.Type(o.mediaType)
	if mediaType != media.TypeTV && mediaType != media.TypeMovie {
		return "", fmt.Errorf("unknown media type %q, want tv or movie", o.mediaType)
	}
	if o.query == "" && o.id == 0 {
		return "", errors.New("either --query or --id is required")
	}
	return mediaType, nil
}

// pipelinePlan is everything preview and rename need after planning.
type pipelinePlan struct {
	client   *tmdb.Client
	identity media.Identity
	ops      []organize.MoveOperation
	// posterDir is the created main folder, empty when files stay in place.
	posterDir string
}

// buildPlan runs the dry part of the pipeline: collect files, resolve the
// TMDB identity, fetch episode titles, render names, and plan moves. Nothing
// here touches the source files.
func buildPlan(ctx context.Context, cfg *config.Config, o *pipelineOpts, args []string) (*pipelinePlan, error) {
	mediaType, err := o.validate()
	if err != nil {
		return nil, err
	}

	files, err := collectFiles(args)
	if err != nil {
		return nil, err
	}

	client := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.Language)
	identity, err := resolveIdentity(ctx, client, mediaType, o.query, o.id)
	if err != nil {
		return nil, err
	}

	seasons, mode, err := fetchSeasons(ctx, client, identity, o.season, o.allSeasons)
	if err != nil {
		return nil, err
	}

	formatter := rename.NewFormatter(cfg.Naming.TVTemplate, cfg.Naming.MovieTemplate)
	rendered := renderAll(files, identity, seasons, mode, o.season, formatter)

	baseDir := o.baseDir
	if baseDir == "" {
		baseDir = cfg.Organize.BaseDir
	}
	flags := organize.Flags{
		OrganizeSeasons: cfg.Organize.Seasons,
		OrganizeMovies:  cfg.Organize.Movies,
	}

	plan := &pipelinePlan{
		client:   client,
		identity: identity,
		ops:      organize.Plan(baseDir, identity, flags, rendered),
	}
	plan.posterDir = posterDirFor(baseDir, identity, flags, files[0])
	return plan, nil
}

// posterDirFor returns the main folder the poster belongs in, or "" when the
// plan creates no main folder and files stay where they are.
func posterDirFor(baseDir string, id media.Identity, flags organize.Flags, firstSource string) string {
	if baseDir == "" && (id.Type != media.TypeMovie || !flags.OrganizeMovies) {
		return ""
	}
	return organize.MainDir(baseDir, id, flags, firstSource)
}

// collectFiles expands arguments into the ordered source file list.
// Directory arguments are scanned recursively for video files; file
// arguments are taken as-is when they have a video extension. Argument
// order is preserved end to end.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := organize.FindVideos(abs)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", arg, err)
			}
			files = append(files, found...)
			continue
		}
		if !organize.IsVideoFile(abs) {
			return nil, fmt.Errorf("%s: not a recognized video file", arg)
		}
		files = append(files, abs)
	}
	return files, nil
}

// resolveIdentity turns the --query/--id flags into a selected identity.
// Query search results are ranked against the query with fuzzy title
// matching and the best candidate wins; --id bypasses search entirely.
func resolveIdentity(ctx context.Context, client *tmdb.Client, mediaType media.Type, query string, id int64) (media.Identity, error) {
	switch mediaType {
	case media.TypeTV:
		if id != 0 {
			detail, err := client.SeriesDetail(ctx, id)
			if err != nil {
				return media.Identity{}, err
			}
			return detail.Identity(), nil
		}

		results, err := client.SearchTV(ctx, query)
		if err != nil {
			return media.Identity{}, err
		}
		if len(results) == 0 {
			return media.Identity{}, fmt.Errorf("%w: %s", errNoResults, query)
		}
		best := results[bestMatch(query, tvNames(results))]

		// Search payloads omit the season count; backfill from the
		// detail endpoint before selection.
		if best.NumberOfSeasons == 0 {
			detail, err := client.SeriesDetail(ctx, best.ID)
			if err != nil {
				return media.Identity{}, fmt.Errorf("series detail: %w", err)
			}
			best.NumberOfSeasons = detail.NumberOfSeasons
		}
		return best.Identity(), nil

	default:
		if id != 0 {
			detail, err := client.MovieDetail(ctx, id)
			if err != nil {
				return media.Identity{}, err
			}
			return detail.Identity(), nil
		}

		results, err := client.SearchMovie(ctx, query)
		if err != nil {
			return media.Identity{}, err
		}
		if len(results) == 0 {
			return media.Identity{}, fmt.Errorf("%w: %s", errNoResults, query)
		}
		return results[bestMatch(query, movieNames(results))].Identity(), nil
	}
}

func bestMatch(query string, names []string) int {
	ranked := title.Rank(query, names)
	return ranked[0].Index
}

func tvNames(results []tmdb.TVResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	return names
}

func movieNames(results []tmdb.MovieResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Title
	}
	return names
}

// fetchSeasons loads the episode title maps detection and rendering need.
// Single-season mode fetches just the selected season; auto mode fetches
// every known season of the series.
func fetchSeasons(ctx context.Context, client *tmdb.Client, id media.Identity, season int, all bool) (media.SeasonEpisodeMap, detect.Mode, error) {
	if id.Type != media.TypeTV {
		return nil, 0, nil
	}
	if all {
		seasons, err := client.AllSeasons(ctx, id.ID, id.SeasonCount)
		if err != nil {
			return nil, 0, fmt.Errorf("fetch seasons: %w", err)
		}
		return seasons, detect.Auto, nil
	}

	episodes, err := client.SeasonEpisodes(ctx, id.ID, season)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch season %d: %w", season, err)
	}
	return media.SeasonEpisodeMap{season: episodes}, detect.SingleSeason, nil
}

// renderAll produces one rendered file per source file, same order.
// Detection failures keep the original filename in auto mode and render
// the unknown-episode token in single-season mode.
func renderAll(files []string, id media.Identity, seasons media.SeasonEpisodeMap, mode detect.Mode, season int, formatter *rename.Formatter) []organize.RenderedFile {
	rendered := make([]organize.RenderedFile, 0, len(files))
	for _, f := range files {
		rendered = append(rendered, renderOne(f, id, seasons, mode, season, formatter))
	}
	return rendered
}

func renderOne(path string, id media.Identity, seasons media.SeasonEpisodeMap, mode detect.Mode, season int, formatter *rename.Formatter) organize.RenderedFile {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")

	if id.Type == media.TypeMovie {
		return organize.RenderedFile{Source: path, Name: formatter.Movie(id, ext)}
	}

	parent := filepath.Base(filepath.Dir(path))
	res := detect.Match(base, parent, mode, season, seasons)
	if !res.Found {
		if mode == detect.SingleSeason {
			// Episode unknown but the season is the operator's pick;
			// surface the gap in the name instead of hiding the file.
			return organize.RenderedFile{
				Source: path,
				Name:   formatter.Episode(id, season, 0, false, "", ext),
			}
		}
		// Auto mode: nothing reliable detected, keep the original name.
		return organize.RenderedFile{Source: path, Name: base}
	}

	episodeTitle := seasons.Title(res.Season, res.Episode)
	return organize.RenderedFile{
		Source:   path,
		Name:     formatter.Episode(id, res.Season, res.Episode, true, episodeTitle, ext),
		Season:   res.Season,
		Episode:  res.Episode,
		Detected: true,
	}
}
