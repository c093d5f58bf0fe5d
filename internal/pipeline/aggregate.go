// Package pipeline orchestrates one search run: keyword expansion, query
// planning, per-connector collection, scoring, deduplication, ranking, and
// diagnostics. Every stage consumes the prior stage's complete output; no
// stage mutates shared state.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/connectors"
	"github.com/seetoh/jobscout/internal/queryplan"
	"github.com/seetoh/jobscout/internal/types"
)

// DefaultQueryLimit is the per-(source, query) record limit passed to
// connectors.
const DefaultQueryLimit = 80

// Aggregate invokes each selected source's connector once per planned
// query, in order, accumulating raw postings. Collection stops across both
// loops once rawCap postings have accumulated, bounding worst-case latency
// and memory. A source with no registered connector contributes a zero
// count; a failure in one call never aborts the run for other calls.
func Aggregate(
	ctx context.Context,
	registry *connectors.Registry,
	queries []queryplan.Query,
	sources []string,
	rawCap int,
	log *zap.Logger,
) ([]types.Posting, map[string]int) {
	if log == nil {
		log = zap.NewNop()
	}

	var collected []types.Posting
	counts := make(map[string]int, len(sources))

	for _, source := range sources {
		counts[source] = 0
		conn, ok := registry.Lookup(source)
		if !ok {
			log.Warn("no connector registered for source", zap.String("source", source))
			continue
		}
		for _, q := range queries {
			if len(collected) >= rawCap {
				break
			}
			postings := searchOne(ctx, conn, q.Text, DefaultQueryLimit, log)
			counts[source] += len(postings)
			for _, p := range postings {
				collected = append(collected, p)
				if len(collected) >= rawCap {
					break
				}
			}
		}
		if len(collected) >= rawCap {
			log.Info("raw cap reached, stopping collection",
				zap.Int("raw_cap", rawCap), zap.String("last_source", source))
			break
		}
	}
	return collected, counts
}

// searchOne isolates a single connector call. Connectors are contracted
// never to fail, but a panic in third-party parsing must not take down the
// run for the remaining queries and sources.
func searchOne(ctx context.Context, conn connectors.Connector, query string, limit int, log *zap.Logger) (postings []types.Posting) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("connector panicked",
				zap.String("source", conn.Name()),
				zap.String("query", query),
				zap.Any("panic", r))
			postings = nil
		}
	}()
	return conn.Search(ctx, query, limit)
}
