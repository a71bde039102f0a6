package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// posterFilename is the fixed name media servers look for.
const posterFilename = "poster.jpg"

// DownloadPoster fetches the poster image for posterPath and writes it as
// poster.jpg inside destDir. Best effort for callers: a missing posterPath
// is not an error, it just does nothing.
func (c *Client) DownloadPoster(ctx context.Context, posterPath, destDir string) error {
	if posterPath == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.imageBaseURL+posterPath, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster download error: %s", resp.Status)
	}

	dest := filepath.Join(destDir, posterFilename)
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create poster file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("write poster: %w", err)
	}
	return out.Close()
}
