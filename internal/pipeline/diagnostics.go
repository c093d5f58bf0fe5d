package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/types"
)

type diagnosticsInput struct {
	startedAt  time.Time
	request    types.SearchRequest
	keywords   types.KeywordSet
	queries    []queryplan.Query
	perSource  map[string]int
	rawCount   int
	dedupCount int
	finalCount int
	recorder   *connectors.Recorder
}

// buildDiagnostics renders the run's Notes rows. The rows are purely
// advisory: they exist so a thin or empty report explains itself instead of
// arriving as an opaque empty file.
func buildDiagnostics(in diagnosticsInput) []types.Note {
	notes := []types.Note{
		{Label: "Search date/time", Value: in.startedAt.Format("2006-01-02 15:04:05")},
		{Label: "Run ID", Value: uuid.NewString()},
		{Label: "Target role", Value: in.keywords.TargetRole},
		{Label: "Core keywords", Value: strings.Join(in.keywords.CoreKeywords, ", ")},
		{Label: "Adjacent titles", Value: strings.Join(in.keywords.AdjacentTitles, ", ")},
		{Label: "Nearby titles", Value: strings.Join(in.keywords.NearbyTitles, ", ")},
		{Label: "Exclude keywords", Value: strings.Join(in.keywords.ExcludeKeywords, ", ")},
		{Label: "Queries used", Value: formatQueries(in.queries)},
		{Label: "Recency window (days)", Value: fmt.Sprintf("%d", in.request.PostedWithinDays)},
		{Label: "Sources selected", Value: strings.Join(in.request.Sources, ", ")},
		{Label: "Per-source returned counts", Value: formatSourceCounts(in.request.Sources, in.perSource)},
		{Label: "Counts (raw -> deduped -> final)", Value: fmt.Sprintf("%d -> %d -> %d", in.rawCount, in.dedupCount, in.finalCount)},
	}

	if in.finalCount == 0 {
		notes = append(notes, types.Note{
			Label: "Why the report can be empty",
			Value: "Sources may block automated clients or render listings with " +
				"client-side scripts, returning zero links. Postings with missing " +
				"fields are kept with explicit placeholders rather than dropped.",
		})
	}

	for i, d := range in.recorder.Entries() {
		notes = append(notes, types.Note{
			Label: fmt.Sprintf("Fetch %d", i+1),
			Value: d.String(),
		})
	}
	return notes
}

func formatQueries(queries []queryplan.Query) string {
	parts := make([]string, 0, len(queries))
	for _, q := range queries {
		parts = append(parts, fmt.Sprintf("%s:%s", q.Type, q.Text))
	}
	return strings.Join(parts, "; ")
}

func formatSourceCounts(sources []string, counts map[string]int) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, fmt.Sprintf("%s: %d returned", s, counts[s]))
	}
	return strings.Join(parts, "; ")
}
