package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/dedup"
	"github.com/seetoh/jobscout/internal/keywords"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/ranking"
	"github.com/seetoh/jobscout/internal/scoring"
	"github.com/seetoh/jobscout/internal/types"
)

// Options configures one pipeline run. Registry and Recorder are injected
// so tests can substitute fakes; Now is injected so closing-date evaluation
// is reproducible.
type Options struct {
	Registry *connectors.Registry
	Recorder *connectors.Recorder
	Now      func() time.Time
	Logger   *zap.Logger
}

// Run executes one complete search. The request is validated first, and a
// validation failure is the only error this function returns. Past that
// boundary the run always completes and produces a result, however many
// sources failed; the diagnostics explain what happened.
func Run(ctx context.Context, request types.SearchRequest, opts Options) (*types.SearchResult, error) {
	request.ApplyDefaults()
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("search request rejected: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("search request rejected: no connector registry configured")
	}

	started := now()

	ks := keywords.Expand(request.TargetRole)
	queries := queryplan.Build(ks.TargetRole, ks.AdjacentTitles, ks.CoreKeywords)
	log.Info("search planned",
		zap.String("target_role", ks.TargetRole),
		zap.Int("queries", len(queries)),
		zap.Strings("sources", request.Sources))

	raw, perSource := Aggregate(ctx, opts.Registry, queries, request.Sources, request.RawCap, log)

	today := now()
	scored := make([]types.ScoredPosting, 0, len(raw))
	for _, p := range raw {
		scored = append(scored, types.ScoredPosting{
			Posting:        p,
			RelevanceScore: scoring.Score(p, ks.TargetRole, ks.AdjacentTitles, ks.NearbyTitles),
			ClosingPassed:  scoring.ClosingPassed(p.Closing, today),
		})
	}

	deduped := dedup.Collapse(scored)
	final := ranking.Rank(deduped, request.MaxFinal)

	log.Info("search complete",
		zap.Int("raw", len(raw)),
		zap.Int("deduped", len(deduped)),
		zap.Int("final", len(final)),
		zap.Duration("elapsed", now().Sub(started)))

	return &types.SearchResult{
		Final:     final,
		PerSource: perSource,
		Diagnostics: buildDiagnostics(diagnosticsInput{
			startedAt:  started,
			request:    request,
			keywords:   ks,
			queries:    queries,
			perSource:  perSource,
			rawCount:   len(raw),
			dedupCount: len(deduped),
			finalCount: len(final),
			recorder:   opts.Recorder,
		}),
	}, nil
}
