package organize

import "errors"

var (
	// ErrTargetExists indicates the destination file already exists and the
	// operator chose to skip it.
	ErrTargetExists = errors.New("target already exists")

	// ErrCopyFailed indicates the copy phase of a move failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrNoVideoFiles indicates a scanned directory contained no video files.
	ErrNoVideoFiles = errors.New("no video files found")
)
