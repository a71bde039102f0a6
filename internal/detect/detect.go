// Package detect infers season and episode numbers from video filenames.
//
// Detection runs an ordered cascade of patterns where the first match wins.
// Two modes exist: single-season, where the operator already picked the
// season and only the episode needs extracting, and auto, where both values
// come from the filename or, failing that, the parent directory name.
package detect

import (
	"regexp"
	"strconv"

	"github.com/vicser16/rtvsm/internal/media"
)

// Mode selects the detection cascade.
type Mode int

const (
	// SingleSeason extracts only the episode number; the season is the
	// operator's selection.
	SingleSeason Mode = iota
	// Auto extracts both season and episode, validating the season
	// against the known season map.
	Auto
)

// Result is the outcome of a detection attempt. Season and Episode are
// meaningful only when Found is true; a partial detection is reported as
// not found.
type Result struct {
	Season  int
	Episode int
	Found   bool
}

// Single-season cascade, ordered. Patterns with two groups carry a season
// group that is ignored in this mode.
var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ss](\d+)[Ee](\d+)`),       // S01E01, season group ignored
	regexp.MustCompile(`(\d+)x(\d+)`),              // 1x01
	regexp.MustCompile(`[Ee](\d+)`),                // E01
	regexp.MustCompile(`[Ee]pisode\s*(\d+)`),       // Episode 01
	regexp.MustCompile(`.*?(\d+)`),                 // last resort: first run of digits
}

// Auto-detect cascade, ordered. Every pattern captures season then episode.
var seasonEpisodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ss](\d+)[Ee](\d+)`),                          // S01E01
	regexp.MustCompile(`(\d+)x(\d+)`),                                 // 1x01
	regexp.MustCompile(`[Tt]emporada\s*(\d+).*?[Ee]pisodio\s*(\d+)`),  // Temporada 1 Episodio 1
	regexp.MustCompile(`[Tt]emporada\s*(\d+).*?[Ee]p\s*(\d+)`),        // Temporada 1 Ep 1
	regexp.MustCompile(`[Tt](\d+)[Ee](\d+)`),                          // T1E01
	regexp.MustCompile(`.*?(\d)[.](\d+)`),                             // Serie.1.01
}

// Directory fallback: season marker in the parent directory name.
// First non-empty capture group wins.
var dirSeasonPattern = regexp.MustCompile(`[Ss]eason\s*(\d+)|[Tt]emporada\s*(\d+)|[Ss](\d+)|[Tt](\d+)`)

// Filename fallback once the season came from the directory name.
var bareEpisodePattern = regexp.MustCompile(`[Ee](\d+)|[Ee]pisode\s*(\d+)|[Ee]p\s*(\d+)|(\d+)`)

// Match runs the detection cascade for filename.
//
// In SingleSeason mode, season is the operator-selected season number and
// parentDir and known are unused. In Auto mode, season is ignored; a parsed
// season must exist as a key of known or the whole detection fails, which
// keeps files out of seasons the series does not have.
func Match(filename, parentDir string, mode Mode, season int, known media.SeasonEpisodeMap) Result {
	if mode == SingleSeason {
		episode, ok := matchEpisode(filename)
		if !ok {
			return Result{}
		}
		return Result{Season: season, Episode: episode, Found: true}
	}
	return matchAuto(filename, parentDir, known)
}

// matchEpisode extracts the episode number with the single-season cascade.
//
// The last-resort rule grabs the first standalone digit run anywhere in the
// name, which can misfire on unrelated numbers such as "1080"; the ordering
// is kept as-is because the earlier rules win whenever a real episode marker
// is present.
func matchEpisode(filename string) (int, bool) {
	for _, re := range episodePatterns {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		// Two capture groups means the pattern carries a season; use the
		// episode group and discard the season.
		group := 1
		if len(m) == 3 {
			group = 2
		}
		n, err := strconv.Atoi(m[group])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

func matchAuto(filename, parentDir string, known media.SeasonEpisodeMap) Result {
	season, episode, ok := matchSeasonEpisode(filename)
	if !ok {
		season, episode, ok = matchFromParentDir(filename, parentDir)
	}
	if !ok {
		return Result{}
	}
	// Validation gate: never place a file into a season the series does
	// not have, even though the numbers parsed cleanly.
	if !known.HasSeason(season) {
		return Result{}
	}
	return Result{Season: season, Episode: episode, Found: true}
}

func matchSeasonEpisode(filename string) (season, episode int, ok bool) {
	for _, re := range seasonEpisodePatterns {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		s, err1 := strconv.Atoi(m[1])
		e, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		return s, e, true
	}
	return 0, 0, false
}

// matchFromParentDir resolves the season from the parent directory name and
// then the episode from the filename alone. Both must resolve.
func matchFromParentDir(filename, parentDir string) (season, episode int, ok bool) {
	season, ok = firstGroup(dirSeasonPattern, parentDir)
	if !ok {
		return 0, 0, false
	}
	episode, ok = firstGroup(bareEpisodePattern, filename)
	if !ok {
		return 0, 0, false
	}
	return season, episode, true
}

// firstGroup returns the first non-empty capture group of re in s as an int.
func firstGroup(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
