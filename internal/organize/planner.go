// Package organize computes destination paths for renamed files and executes
// the resulting moves as a sequential batch.
//
// Planning is a pure computation over explicit inputs; only the batch mover
// touches the filesystem, and it does so through the Filesystem seam so the
// batch logic can be tested without real disk.
package organize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/vicser16/rtvsm/internal/media"
	"github.com/vicser16/rtvsm/internal/rename"
)

// Flags are the organization switches from configuration.
type Flags struct {
	OrganizeSeasons bool // route TV episodes into Season NN folders
	OrganizeMovies  bool // create a "Title (Year)" folder for movies
}

// RenderedFile pairs a source file with its rendered name and the detected
// season/episode, when detection succeeded.
type RenderedFile struct {
	Source   string // absolute path of the source file
	Name     string // rendered base filename including extension
	Season   int
	Episode  int
	Detected bool
}

// Outcome is the terminal disposition of one move. Assigned exactly once.
type Outcome int

const (
	Pending Outcome = iota
	Succeeded
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// MoveOperation is one planned file move. Reason carries the skip or
// failure detail once the outcome is terminal.
type MoveOperation struct {
	From    string
	To      string
	Outcome Outcome
	Reason  string
}

// renderedSeasonPattern re-derives the season from the rendered filename.
// Placement follows the rendered name, not the detection result: the name
// the operator previewed is what decides the folder.
var renderedSeasonPattern = regexp.MustCompile(`S(\d+)E(\d+)`)

// MainDir returns the folder planned moves land under. The main folder is
// "{Title} (Year)"; it is created under the root when a base directory
// override was supplied, or when organizing movies. Otherwise files stay in
// the root, which defaults to the directory of the first source file.
func MainDir(baseOverride string, id media.Identity, flags Flags, firstSource string) string {
	root := baseOverride
	if root == "" {
		root = filepath.Dir(firstSource)
	}
	if baseOverride != "" || (id.Type == media.TypeMovie && flags.OrganizeMovies) {
		return filepath.Join(root, rename.SanitizeFilename(id.MainFolder()))
	}
	return root
}

// Plan computes one MoveOperation per rendered file, in input order.
func Plan(baseOverride string, id media.Identity, flags Flags, files []RenderedFile) []MoveOperation {
	if len(files) == 0 {
		return nil
	}

	main := MainDir(baseOverride, id, flags, files[0].Source)

	ops := make([]MoveOperation, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(main, f.Name)
		if id.Type == media.TypeTV && flags.OrganizeSeasons {
			if m := renderedSeasonPattern.FindStringSubmatch(f.Name); m != nil {
				season, err := strconv.Atoi(m[1])
				if err == nil {
					dest = filepath.Join(main, fmt.Sprintf("Season %02d", season), f.Name)
				}
			}
		}
		ops = append(ops, MoveOperation{From: f.Source, To: dest})
	}
	return ops
}
