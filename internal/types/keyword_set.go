package types

// Caps on the keyword set lists. Lists are deduplicated case-insensitively
// preserving first-seen order, then truncated.
const (
	MaxCoreKeywords    = 10
	MaxAdjacentTitles  = 20
	MaxNearbyTitles    = 20
	MaxExcludeKeywords = 10
)

// KeywordSet holds the search vocabulary derived once from the target role.
type KeywordSet struct {
	TargetRole      string
	CoreKeywords    []string // skills and domain synonyms, includes the role itself
	AdjacentTitles  []string // near-synonym job titles
	NearbyTitles    []string // functionally related but distinct titles
	ExcludeKeywords []string // terms that disqualify a title
}
