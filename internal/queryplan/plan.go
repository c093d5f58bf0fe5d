// Package queryplan turns an expanded keyword set into the bounded list of
// search queries submitted to every selected connector.
package queryplan

import (
	"fmt"
	"strings"
)

// QueryType labels how a query was derived from the keyword set.
type QueryType string

// Query derivations, in the order they are planned.
const (
	QueryExact      QueryType = "Exact"
	QueryAdjacent   QueryType = "Adjacent"
	QuerySkillBased QueryType = "Skill-based"
)

// MaxQueries bounds the plan. Every connector is invoked once per query, so
// this cap bounds the total number of fetches per source.
const MaxQueries = 3

// Query is one (text, derivation) pair submitted to connectors.
type Query struct {
	Text string
	Type QueryType
}

// Build plans the query list for a run. The plan is deterministic: identical
// inputs produce the identical sequence. The exact query always comes first,
// followed by adjacent-title queries, with a skill-based query filling the
// last slot when room remains.
func Build(targetRole string, adjacentTitles, coreKeywords []string) []Query {
	queries := make([]Query, 0, MaxQueries)
	queries = append(queries, Query{Text: targetRole, Type: QueryExact})

	adjacent := adjacentTitles
	if len(adjacent) == 0 {
		adjacent = []string{targetRole}
	}
	// Leave one slot for the skill-based query.
	for _, title := range adjacent {
		if len(queries) >= MaxQueries-1 {
			break
		}
		queries = append(queries, Query{Text: title, Type: QueryAdjacent})
	}

	queries = append(queries, Query{Text: skillQuery(targetRole, coreKeywords), Type: QuerySkillBased})
	return queries[:min(len(queries), MaxQueries)]
}

// skillQuery concatenates the role with up to two core keywords distinct
// from the role itself, degrading to fewer keywords or the bare role.
func skillQuery(targetRole string, coreKeywords []string) string {
	roleKey := normalize(targetRole)
	extras := make([]string, 0, 2)
	for _, kw := range coreKeywords {
		if normalize(kw) == roleKey {
			continue
		}
		extras = append(extras, kw)
		if len(extras) == 2 {
			break
		}
	}
	if len(extras) == 0 {
		return targetRole
	}
	return fmt.Sprintf("%s %s", targetRole, strings.Join(extras, " "))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
