// Package ranking orders scored postings by policy and truncates the result
// to the final cap.
package ranking

import (
	"sort"

	"github.com/seetoh/jobscout/internal/types"
)

// Rank sorts postings by relevance score descending; among equal scores,
// records with a verifiable posted date rank above those without, and newer
// verified dates rank first. The sort is stable, so re-running on the same
// input yields the same order. Truncation to maxFinal happens only after
// the full ordering.
func Rank(records []types.ScoredPosting, maxFinal int) []types.ScoredPosting {
	ranked := make([]types.ScoredPosting, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		aPosted, aOK := a.Posted.Time()
		bPosted, bOK := b.Posted.Time()
		if aOK != bOK {
			return aOK
		}
		if aOK && bOK && !aPosted.Equal(bPosted) {
			return aPosted.After(bPosted)
		}
		return false
	})

	if maxFinal > 0 && len(ranked) > maxFinal {
		ranked = ranked[:maxFinal]
	}
	return ranked
}
