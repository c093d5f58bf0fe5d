// Package observability provides formatted output utilities for verbose CLI
// mode and the structured logger used across the pipeline.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// clip bounds a line to max runes, appending an ellipsis when trimmed.
// Rune counting keeps multibyte titles from being cut mid-character.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		line = clip(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSearchPlan outputs the expanded keyword set and the queries derived
// from it.
func (p *Printer) PrintSearchPlan(keywords types.KeywordSet, queries []queryplan.Query) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:     %s\n\n", keywords.TargetRole))

	writeList := func(label string, items []string, limit int) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(label + ":\n")
		count := min(len(items), limit)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > limit {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
		}
	}
	writeList("Core keywords", keywords.CoreKeywords, maxItemsToShow)
	writeList("Adjacent titles", keywords.AdjacentTitles, 3)
	writeList("Nearby titles", keywords.NearbyTitles, 3)

	sb.WriteString("\nQueries:\n")
	for _, q := range queries {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", q.Type, q.Text))
	}

	p.printBox("SEARCH PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSourceCounts outputs per-source raw posting counts in the order the
// sources were searched.
func (p *Printer) PrintSourceCounts(sources []string, counts map[string]int) {
	if len(sources) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for _, s := range sources {
		sb.WriteString(fmt.Sprintf("%-22s %d\n", s, counts[s]))
		total += counts[s]
	}
	sb.WriteString(fmt.Sprintf("\nTotal raw postings: %d", total))

	p.printBox("PER-SOURCE COUNTS", sb.String())
}

// PrintTopPostings outputs the top N final records with scores.
func (p *Printer) PrintTopPostings(records []types.ScoredPosting) {
	if len(records) == 0 {
		p.printBox("FINAL POSTINGS", "No postings matched this search.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final postings: %d\n\n", len(records)))

	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := records[i]
		title := clip(r.Title.Or(types.SentinelNotStated), 42)
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d  Source: %s\n", r.RelevanceScore, r.Source))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(records)-maxItemsToShow))
	}

	p.printBox("FINAL POSTINGS", sb.String())
}

// PrintFetchDiagnostics outputs the per-fetch diagnostics captured during a
// run, most useful when a source returned nothing.
func (p *Printer) PrintFetchDiagnostics(entries []connectors.Diagnostic) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fetches recorded: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		line := clip(entries[i].String(), 50)
		sb.WriteString(fmt.Sprintf("• %s\n", line))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more fetches", len(entries)-maxItemsToShow))
	}

	p.printBox("FETCH DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}
