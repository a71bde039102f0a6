package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	candidates := []string{"Breaking In", "Breaking Bad", "Bad Education"}

	ranked := Rank("breaking bad", candidates)
	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Index)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-6)
}

func TestRankNormalizesBeforeScoring(t *testing.T) {
	// Article and accents differ, the cleaned titles are identical.
	ranked := Rank("aguila roja", []string{"Something Else", "El Águila Roja"})
	assert.Equal(t, 1, ranked[0].Index)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-6)
}

func TestRankTiesKeepProviderOrder(t *testing.T) {
	ranked := Rank("the wire", []string{"The Wire", "The Wire"})
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Index)
	assert.Equal(t, 1, ranked[1].Index)
}

func TestRankEmptyCandidates(t *testing.T) {
	assert.Empty(t, Rank("anything", nil))
}
