// Package keywords derives the search vocabulary for a target role: core
// keywords, adjacent and nearby job titles, and exclude terms. Curated
// entries cover recognized role families; everything else falls back to
// mechanically generated title variants.
package keywords

import (
	"fmt"
	"strings"

	"github.com/seetoh/jobscout/internal/types"
)

// Expand builds the KeywordSet for a target role. It never fails: the core
// keywords always include at least the trimmed role itself.
func Expand(targetRole string) types.KeywordSet {
	role := strings.TrimSpace(targetRole)
	normalized := normalize(role)

	core := []string{role}
	var adjacent, nearby, exclude []string

	if entry, ok := matchCurated(normalized); ok {
		core = append(core, entry.core...)
		adjacent = entry.adjacent
		nearby = entry.nearby
		exclude = entry.exclude
	} else {
		adjacent = genericAdjacent(role)
		nearby = genericNearby(role)
	}

	return types.KeywordSet{
		TargetRole:      role,
		CoreKeywords:    dedupeCap(core, types.MaxCoreKeywords),
		AdjacentTitles:  dedupeCap(adjacent, types.MaxAdjacentTitles),
		NearbyTitles:    dedupeCap(nearby, types.MaxNearbyTitles),
		ExcludeKeywords: dedupeCap(exclude, types.MaxExcludeKeywords),
	}
}

// genericAdjacent produces near-synonym title variants for roles without a
// curated entry.
func genericAdjacent(role string) []string {
	return []string{
		fmt.Sprintf("%s Executive", role),
		fmt.Sprintf("%s Officer", role),
		fmt.Sprintf("%s Specialist", role),
		fmt.Sprintf("Senior %s", role),
		fmt.Sprintf("Assistant %s", role),
		fmt.Sprintf("%s Coordinator", role),
		fmt.Sprintf("%s Manager", role),
	}
}

// genericNearby produces related-but-distinct title variants for roles
// without a curated entry.
func genericNearby(role string) []string {
	return []string{
		fmt.Sprintf("%s Associate", role),
		fmt.Sprintf("%s Consultant", role),
		fmt.Sprintf("%s Lead", role),
		fmt.Sprintf("Junior %s", role),
	}
}

// normalize lowercases, trims, and collapses internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsWordish reports whether needle occurs in haystack, both already
// normalized. Plural forms match because the check is substring-based
// ("partnership" matches "community partnerships").
func containsWordish(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// dedupeCap removes case-insensitive duplicates and blanks, preserving
// first-seen order, and truncates to cap entries.
func dedupeCap(list []string, cap int) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, item := range list {
		key := normalize(item)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(item))
		if len(out) >= cap {
			break
		}
	}
	return out
}
