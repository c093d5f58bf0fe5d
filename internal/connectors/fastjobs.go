package connectors

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

const fastJobsBaseURL = "https://www.fastjobs.sg"

// FastJobs harvests job ad links from the FastJobs search page. The listing
// page exposes links only, so every posting is link-only with the remaining
// fields absent; scoring treats them accordingly.
type FastJobs struct {
	BaseURL string
	opts    *fetch.Options
	rec     *Recorder
	log     *zap.Logger
}

// NewFastJobs builds the FastJobs connector.
func NewFastJobs(rec *Recorder, log *zap.Logger) *FastJobs {
	return &FastJobs{
		BaseURL: fastJobsBaseURL,
		opts:    fetch.DefaultOptions(),
		rec:     rec,
		log:     log,
	}
}

// Name implements Connector.
func (c *FastJobs) Name() string { return SourceFastJobs }

// Search implements Connector. Any failure yields zero postings.
func (c *FastJobs) Search(ctx context.Context, query string, limit int) []types.Posting {
	searchURL := fmt.Sprintf("%s/singapore-jobs-search/%s/?source=search", c.BaseURL, slugify(query))

	result, err := fetch.URL(ctx, searchURL, c.opts)
	if err != nil {
		recordFailure(c.rec, c.log, c.Name(), query, searchURL, result, err)
		return nil
	}

	doc, err := result.Document()
	if err != nil {
		recordFailure(c.rec, c.log, c.Name(), query, searchURL, result, err)
		return nil
	}

	links := collectJobLinks(doc, c.BaseURL, "/singapore-job-ad/", limit)
	c.rec.Record(Diagnostic{
		Source:     c.Name(),
		Query:      query,
		URL:        searchURL,
		FinalURL:   result.FinalURL,
		StatusCode: result.StatusCode,
		PageTitle:  fetch.Title(doc, 80),
		Bytes:      result.Bytes,
		Links:      len(links),
	})

	postings := make([]types.Posting, 0, len(links))
	for _, link := range links {
		postings = append(postings, types.Posting{
			URL:    link,
			Source: c.Name(),
		})
	}
	return postings
}

