package analyzer

import (
	"sort"

	"github.com/piiscope/piiscope/pkg/models"
)

// ResolveOverlaps reduces a noisy span multiset to a non-overlapping set.
//
// Candidates are sorted by (start asc, length desc, score desc) and
// accepted greedily. When a candidate overlaps an already-accepted span,
// only the first such span is considered: the candidate replaces it if its
// score is strictly higher, otherwise the candidate is dropped. This
// first-conflict-wins rule is intentional; downstream behavior depends on
// these exact tie-breaks, so do not "fix" it into an exhaustive overlap
// check.
func ResolveOverlaps(spans []models.Span) []models.Span {
	sorted := make([]models.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		if sorted[i].Length() != sorted[j].Length() {
			return sorted[i].Length() > sorted[j].Length()
		}
		return sorted[i].Score > sorted[j].Score
	})

	accepted := make([]models.Span, 0, len(sorted))
	for _, r := range sorted {
		keep := true
		for i, e := range accepted {
			if !r.Overlaps(e) {
				continue
			}
			if r.Score <= e.Score {
				keep = false
			} else {
				accepted = append(accepted[:i], accepted[i+1:]...)
			}
			break
		}
		if keep {
			accepted = append(accepted, r)
		}
	}

	return accepted
}
