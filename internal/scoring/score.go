// Package scoring computes the bounded relevance score for a posting and
// evaluates its closing date. The score sums three independently-capped
// signals so a strong title match still ranks highly with a weak employer
// signal, while no single signal can dominate.
package scoring

import (
	"strings"

	"github.com/seetoh/jobscout/internal/types"
)

// Title sub-score ladder, strongest match first.
const (
	titleExactMatch    = 120 // target role appears verbatim in the title
	titleAllWordsMatch = 100 // every role word present, any order
	titleAdjacentMatch = 85  // an adjacent title appears in the title
	titleNearbyMatch   = 60  // a nearby-title token appears in the title
	titleAnyWordMatch  = 30  // a single role word appears
)

// Domain sub-score levels.
const (
	domainInstitutional = 40
	domainGeneric       = 25
	domainFloor         = 10 // employer gave no sector signal
)

// Employment-type sub-score levels.
const (
	empFullTime = 20
	empContract = 15
	empPartTime = 5
)

// institutionalKeywords mark public, non-profit, and healthcare employers,
// the sectors this pipeline favors.
var institutionalKeywords = []string{
	"ngo", "foundation", "charity", "community", "public", "government",
	"hospital", "health",
}

// genericKeywords mark employers that are clearly real companies without a
// sector signal.
var genericKeywords = []string{
	"institute", "association", "society", "group", "services", "pte", "ltd",
}

// Score computes the relevance score for a posting, clamped to
// [0, types.MaxRelevanceScore].
func Score(p types.Posting, targetRole string, adjacentTitles, nearbyTitles []string) int {
	total := titleScore(p.Title, targetRole, adjacentTitles, nearbyTitles) +
		domainScore(p.Employer) +
		employmentScore(p.Type)
	if total > types.MaxRelevanceScore {
		return types.MaxRelevanceScore
	}
	return total
}

// titleScore walks the match ladder from strongest to weakest signal.
func titleScore(title types.Text, targetRole string, adjacentTitles, nearbyTitles []string) int {
	raw, ok := title.Value()
	if !ok {
		return 0
	}
	t := strings.ToLower(raw)
	role := strings.ToLower(strings.TrimSpace(targetRole))
	if role == "" {
		return 0
	}

	if strings.Contains(t, role) {
		return titleExactMatch
	}

	words := strings.Fields(role)
	if len(words) > 0 && allWordsIn(t, words) {
		return titleAllWordsMatch
	}
	if anySubstringIn(t, adjacentTitles) {
		return titleAdjacentMatch
	}
	if anySubstringIn(t, nearbyTitles) {
		return titleNearbyMatch
	}
	for _, w := range words {
		if strings.Contains(t, w) {
			return titleAnyWordMatch
		}
	}
	return 0
}

func allWordsIn(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func anySubstringIn(text string, candidates []string) bool {
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && strings.Contains(text, c) {
			return true
		}
	}
	return false
}

// domainScore is a heuristic over the employer name. An employer with no
// recognizable sector keyword still gets the floor, so domain signal never
// zeroes out a record that merely came from a terse source.
func domainScore(employer types.Text) int {
	raw, ok := employer.Value()
	score := domainFloor
	if !ok {
		return score
	}
	e := strings.ToLower(raw)
	for _, k := range institutionalKeywords {
		if strings.Contains(e, k) {
			return domainInstitutional
		}
	}
	for _, k := range genericKeywords {
		if strings.Contains(e, k) {
			return domainGeneric
		}
	}
	return score
}

func employmentScore(jt types.JobType) int {
	switch jt {
	case types.JobTypeFullTime:
		return empFullTime
	case types.JobTypeContract:
		return empContract
	case types.JobTypePartTime:
		return empPartTime
	default:
		return 0
	}
}
