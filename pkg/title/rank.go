package title

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Scored pairs a candidate index with its similarity to the query.
type Scored struct {
	Index int     // position in the candidates slice
	Score float64 // Jaro-Winkler similarity, 0.0-1.0
}

// Rank orders candidate titles by similarity to query, best first.
// Jaro-Winkler favors shared prefixes, which suits media titles where the
// distinguishing part is usually a suffix ("... Part II", year, subtitle).
// Ties keep the provider's original order, which reflects its own
// popularity ranking.
func Rank(query string, candidates []string) []Scored {
	cleanQuery := Clean(query)

	scored := make([]Scored, len(candidates))
	for i, candidate := range candidates {
		scored[i] = Scored{
			Index: i,
			Score: float64(edlib.JaroWinklerSimilarity(cleanQuery, Clean(candidate))),
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}
