package tmdb

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vicser16/rtvsm/internal/media"
)

// maxConcurrentSeasons bounds parallel season requests per series.
const maxConcurrentSeasons = 4

// AllSeasons fetches every season of a series (1..numSeasons) and merges
// the results into one SeasonEpisodeMap. Seasons are fetched concurrently;
// any failed season fails the whole fetch.
func (c *Client) AllSeasons(ctx context.Context, seriesID int64, numSeasons int) (media.SeasonEpisodeMap, error) {
	all := make(media.SeasonEpisodeMap, numSeasons)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSeasons)

	for season := 1; season <= numSeasons; season++ {
		season := season
		g.Go(func() error {
			episodes, err := c.SeasonEpisodes(ctx, seriesID, season)
			if err != nil {
				return err
			}
			mu.Lock()
			all[season] = episodes
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}
