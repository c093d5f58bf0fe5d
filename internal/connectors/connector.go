// Package connectors adapts external job boards to the pipeline. A connector
// never surfaces an error: network failures, bot blocks, and unexpected
// markup all degrade to zero results, with the failure reason captured in
// the diagnostics recorder instead of swallowed at the call site.
package connectors

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

// Connector is one external job-listing source. Search returns at most
// limit postings and never fails to the caller; every field of a returned
// posting is populated with a real value when extractable.
type Connector interface {
	Name() string
	Search(ctx context.Context, query string, limit int) []types.Posting
}

// Diagnostic is the bounded advisory record a connector keeps per fetch.
// It carries no control-flow significance; it exists so an empty report can
// explain itself.
type Diagnostic struct {
	Source     string
	Query      string
	URL        string
	FinalURL   string
	StatusCode int
	PageTitle  string
	Bytes      int
	Links      int
	Failure    string // empty when the fetch succeeded
}

// String renders the diagnostic as one Notes-sheet value.
func (d Diagnostic) String() string {
	if d.Failure != "" {
		return fmt.Sprintf("%s %q: %s", d.Source, d.Query, d.Failure)
	}
	return fmt.Sprintf("%s %q: status %d, %d bytes, %d links (%s)",
		d.Source, d.Query, d.StatusCode, d.Bytes, d.Links, d.FinalURL)
}

// maxDiagnostics bounds the recorder so a chatty run cannot bloat the report.
const maxDiagnostics = 40

// Recorder collects per-fetch diagnostics for one run. Runs are
// single-threaded, so no locking is needed; a fresh Recorder is constructed
// per search request.
type Recorder struct {
	entries []Diagnostic
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a diagnostic, dropping it silently once the bound is hit.
func (r *Recorder) Record(d Diagnostic) {
	if r == nil || len(r.entries) >= maxDiagnostics {
		return
	}
	r.entries = append(r.entries, d)
}

// Entries returns the recorded diagnostics in arrival order.
func (r *Recorder) Entries() []Diagnostic {
	if r == nil {
		return nil
	}
	return r.entries
}

// recordFailure captures a failed search fetch for any connector. The
// partial result, when present, still carries the status and resolved URL.
func recordFailure(rec *Recorder, log *zap.Logger, source, query, url string, result *fetch.Result, err error) {
	d := Diagnostic{Source: source, Query: query, URL: url, Failure: err.Error()}
	if result != nil {
		d.StatusCode = result.StatusCode
		d.FinalURL = result.FinalURL
		d.Bytes = result.Bytes
	}
	rec.Record(d)
	log.Debug("search fetch failed",
		zap.String("source", source),
		zap.String("query", query),
		zap.Error(err))
}
