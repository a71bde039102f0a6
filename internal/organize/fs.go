package organize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -destination=mocks/filesystem.go -package=mocks github.com/vicser16/rtvsm/internal/organize Filesystem

// Filesystem is the capability the batch mover needs from the host.
// Production code uses OSFilesystem; tests inject a mock.
type Filesystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Move relocates a file. Implementations must not rely on rename(2)
	// so moves across devices succeed.
	Move(from, to string) error
}

// OSFilesystem implements Filesystem against the real disk.
type OSFilesystem struct{}

func (OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFilesystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Move copies from to to, syncs, then deletes the original. Copy-then-delete
// works across devices and volumes where rename(2) returns EXDEV, and a
// failed copy leaves the source untouched.
func (OSFilesystem) Move(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(to)
		return fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}
	if err := dst.Sync(); err != nil {
		_ = dst.Close()
		return fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: close destination: %v", ErrCopyFailed, err)
	}

	if err := os.Remove(from); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// videoExtensions is the allow-list of file types the scanner picks up.
var videoExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
	".mov": true,
	".wmv": true,
}

// IsVideoFile reports whether path has a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// FindVideos returns every video file under root, recursively, in walk
// order. Returns ErrNoVideoFiles when the tree holds none.
func FindVideos(root string) ([]string, error) {
	var videos []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsVideoFile(path) {
			return nil
		}
		videos = append(videos, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	if len(videos) == 0 {
		return nil, ErrNoVideoFiles
	}
	return videos, nil
}
