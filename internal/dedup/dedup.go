// Package dedup collapses postings that describe the same job. Identity is
// semantic, normalized (title, employer) rather than the link, because sources
// routinely expose the same posting under different URLs.
package dedup

import (
	"strings"

	"github.com/seetoh/jobscout/internal/types"
)

type key struct {
	title    string
	employer string
}

// Collapse returns at most one posting per (normalized title, normalized
// employer) pair, keeping the most complete variant of each group.
// First-seen order of groups is preserved, so the result is deterministic.
func Collapse(records []types.ScoredPosting) []types.ScoredPosting {
	best := make(map[key]int, len(records)) // key -> index into out
	out := make([]types.ScoredPosting, 0, len(records))

	for _, r := range records {
		k := key{
			title:    normalize(r.Title.Or("")),
			employer: normalize(r.Employer.Or("")),
		}
		idx, seen := best[k]
		if !seen {
			best[k] = len(out)
			out = append(out, r)
			continue
		}
		if moreComplete(r, out[idx]) {
			out[idx] = r
		}
	}
	return out
}

// completeness orders two duplicates by how much real information they
// carry: verifiable posted date, stated closing date, stated salary, then
// requirements text length, compared lexicographically.
func completeness(r types.ScoredPosting) [4]int {
	var c [4]int
	if r.Posted.IsSet() {
		c[0] = 1
	}
	if r.Closing.IsSet() {
		c[1] = 1
	}
	if r.Salary.IsSet() {
		c[2] = 1
	}
	c[3] = len(strings.Join(r.Requirements, "\n"))
	return c
}

// moreComplete reports whether a is strictly more complete than b.
func moreComplete(a, b types.ScoredPosting) bool {
	ca, cb := completeness(a), completeness(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return ca[i] > cb[i]
		}
	}
	return false
}

// normalize lowercases, trims, and collapses internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
