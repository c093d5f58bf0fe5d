package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/types"
)

func TestPrintSearchPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	keywords := types.KeywordSet{
		TargetRole:     "Community Partnership Executive",
		CoreKeywords:   []string{"community partnership executive", "stakeholder engagement"},
		AdjacentTitles: []string{"Community Engagement Executive", "Partnership Executive"},
		NearbyTitles:   []string{"Corporate Social Responsibility Executive"},
	}
	queries := []queryplan.Query{
		{Text: "Community Partnership Executive", Type: queryplan.QueryExact},
		{Text: "Partnership Executive", Type: queryplan.QueryAdjacent},
	}

	p.PrintSearchPlan(keywords, queries)
	output := buf.String()

	assert.Contains(t, output, "SEARCH PLAN")
	assert.Contains(t, output, "Community Partnership Executive")
	assert.Contains(t, output, "stakeholder engagement")
	assert.Contains(t, output, "Exact:")
	assert.Contains(t, output, "Adjacent:")
}

func TestPrintSourceCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSourceCounts(
		[]string{"FastJobs", "GrabJobs"},
		map[string]int{"FastJobs": 12, "GrabJobs": 0},
	)
	output := buf.String()

	assert.Contains(t, output, "PER-SOURCE COUNTS")
	assert.Contains(t, output, "FastJobs")
	assert.Contains(t, output, "12")
	assert.Contains(t, output, "Total raw postings: 12")
}

func TestPrintSourceCounts_NoSources(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSourceCounts(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintTopPostings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := []types.ScoredPosting{
		{
			Posting: types.Posting{
				Title:  types.NewText("Community Partnership Executive"),
				Source: "FastJobs",
			},
			RelevanceScore: 180,
		},
		{
			Posting: types.Posting{
				Title:  types.NewText("Partnership Officer"),
				Source: "GrabJobs",
			},
			RelevanceScore: 125,
		},
	}

	p.PrintTopPostings(records)
	output := buf.String()

	assert.Contains(t, output, "FINAL POSTINGS")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "Score: 180")
	assert.Contains(t, output, "Partnership Officer")
}

func TestPrintTopPostings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTopPostings(nil)

	assert.Contains(t, buf.String(), "No postings matched")
}

func TestPrintFetchDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFetchDiagnostics([]connectors.Diagnostic{
		{Source: "FastJobs", URL: "https://example.com/search", StatusCode: 200},
	})
	output := buf.String()

	assert.Contains(t, output, "FETCH DIAGNOSTICS")
	assert.Contains(t, output, "FastJobs")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := []types.ScoredPosting{
		{
			Posting: types.Posting{
				Title:  types.NewText("Senior Staff Principal Distinguished Partnership Executive Level 99"),
				Source: "FastJobs",
			},
			RelevanceScore: 60,
		},
	}

	p.PrintTopPostings(records)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

func TestPrintTopPostings_MultibyteTitleStaysValidUTF8(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := []types.ScoredPosting{
		{
			Posting: types.Posting{
				Title:  types.NewText(strings.Repeat("社区伙伴关系执行主管", 8)),
				Source: "FastJobs",
			},
			RelevanceScore: 85,
		},
	}

	p.PrintTopPostings(records)

	assert.True(t, utf8.ValidString(buf.String()))
	assert.Contains(t, buf.String(), "...")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "社区伙伴...", clip("社区伙伴关系执行主管", 7))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger(true))
	assert.NotNil(t, NewLogger(false))
}
