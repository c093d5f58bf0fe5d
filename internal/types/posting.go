package types

import "strings"

// MaxRequirementBullets caps how many requirement phrases a connector may
// attach to a posting.
const MaxRequirementBullets = 3

// Posting is one job posting as reported by a single source, prior to
// scoring. Postings are immutable after creation: downstream stages read
// them and construct richer records rather than mutating in place.
type Posting struct {
	Title        Text
	Employer     Text
	URL          string
	Source       string
	Posted       Date     // renders as "Unverified" when unset
	Closing      Date     // renders as "Not stated" when unset
	Requirements []string // 0..3 short phrases, without bullet markers
	Salary       Text
	Type         JobType
}

// RequirementsText renders the requirement phrases as bullet lines, or the
// placeholder bullet when none were extracted.
func (p Posting) RequirementsText() string {
	if len(p.Requirements) == 0 {
		return SentinelNoRequirements
	}
	lines := make([]string, 0, len(p.Requirements))
	for _, r := range p.Requirements {
		lines = append(lines, "• "+r)
	}
	return strings.Join(lines, "\n")
}

// ClosingPassed states whether a posting's closing date has already passed.
type ClosingPassed string

// ClosingPassed values as they appear in the report.
const (
	ClosingPassedYes     ClosingPassed = "Yes"
	ClosingPassedNo      ClosingPassed = "No"
	ClosingPassedUnknown ClosingPassed = "Unknown"
)

// MaxRelevanceScore is the upper bound of the relevance score range.
const MaxRelevanceScore = 200

// ScoredPosting is a Posting enriched with the relevance score and the
// closing-date evaluation. It is constructed fresh from the posting it
// wraps; the original posting is not mutated.
type ScoredPosting struct {
	Posting
	RelevanceScore int // always in [0, MaxRelevanceScore]
	ClosingPassed  ClosingPassed
}
