package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piiscope/piiscope/pkg/models"
	"github.com/piiscope/piiscope/pkg/testutils"
)

func TestResolveOverlapsKeepsHigherScore(t *testing.T) {
	spans := []models.Span{
		{EntityType: "PHONE_NUMBER", Start: 0, End: 10, Score: 0.95},
		{EntityType: "PINCODE", Start: 5, End: 11, Score: 0.4},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 1)
	assert.Equal(t, "PHONE_NUMBER", resolved[0].EntityType)
}

func TestResolveOverlapsKeepsLongerMatch(t *testing.T) {
	spans := []models.Span{
		{EntityType: "SHORT", Start: 0, End: 5, Score: 0.9},
		{EntityType: "LONG", Start: 0, End: 10, Score: 0.9},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 1)
	assert.Equal(t, "LONG", resolved[0].EntityType)
}

func TestResolveOverlapsReplacesLowerScoringAccepted(t *testing.T) {
	// The earlier-starting span is accepted first, then displaced by the
	// higher-scoring overlapping candidate.
	spans := []models.Span{
		{EntityType: "PINCODE", Start: 0, End: 6, Score: 0.5},
		{EntityType: "PHONE_NUMBER", Start: 3, End: 13, Score: 0.95},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 1)
	assert.Equal(t, "PHONE_NUMBER", resolved[0].EntityType)
}

func TestResolveOverlapsDiscardsContainedSpan(t *testing.T) {
	spans := []models.Span{
		{EntityType: "INNER", Start: 2, End: 5, Score: 0.8},
		{EntityType: "OUTER", Start: 0, End: 10, Score: 0.9},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 1)
	assert.Equal(t, "OUTER", resolved[0].EntityType)
}

func TestResolveOverlapsChainedReplacement(t *testing.T) {
	// Pins the single-pass greedy behavior on chained overlaps: each
	// candidate only displaces the first accepted span it conflicts with.
	spans := []models.Span{
		{EntityType: "A", Start: 0, End: 10, Score: 0.5},
		{EntityType: "B", Start: 5, End: 15, Score: 0.7},
		{EntityType: "C", Start: 10, End: 20, Score: 0.9},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 1)
	assert.Equal(t, "C", resolved[0].EntityType)
	assert.Equal(t, 10, resolved[0].Start)
	assert.Equal(t, 20, resolved[0].End)
}

func TestResolveOverlapsKeepsNonOverlapping(t *testing.T) {
	spans := []models.Span{
		{EntityType: "PERSON", Start: 20, End: 30, Score: 0.9},
		{EntityType: "PHONE_NUMBER", Start: 0, End: 10, Score: 0.95},
		{EntityType: "LOCATION", Start: 10, End: 15, Score: 0.85},
	}

	resolved := ResolveOverlaps(spans)

	require.Len(t, resolved, 3)
	// Output is ordered by start ascending.
	assert.Equal(t, "PHONE_NUMBER", resolved[0].EntityType)
	assert.Equal(t, "LOCATION", resolved[1].EntityType)
	assert.Equal(t, "PERSON", resolved[2].EntityType)
}

func TestResolveOverlapsEmptyInput(t *testing.T) {
	assert.Empty(t, ResolveOverlaps(nil))
	assert.Empty(t, ResolveOverlaps([]models.Span{}))
}

func TestResolveOverlapsOutputNeverOverlaps(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		spans := testutils.GenerateRandomSpans(50, seed)
		resolved := ResolveOverlaps(spans)
		for i := range resolved {
			for j := i + 1; j < len(resolved); j++ {
				assert.False(t, resolved[i].Overlaps(resolved[j]),
					"seed %d: spans %+v and %+v overlap", seed, resolved[i], resolved[j])
			}
		}
	}
}

func TestResolveOverlapsIdempotent(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		spans := testutils.GenerateRandomSpans(50, seed)
		once := ResolveOverlaps(spans)
		twice := ResolveOverlaps(once)
		assert.Equal(t, once, twice, "seed %d", seed)
	}
}
