package connectors

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

const grabJobsBaseURL = "https://grabjobs.co"

// GrabJobs scrapes the GrabJobs search page and opens each job page for
// detail: title, employer, short requirement bullets, employment type, and
// a salary range when one is printed.
type GrabJobs struct {
	BaseURL string
	opts    *fetch.Options
	rec     *Recorder
	log     *zap.Logger
	now     func() time.Time
}

// NewGrabJobs builds the GrabJobs connector.
func NewGrabJobs(rec *Recorder, log *zap.Logger) *GrabJobs {
	return &GrabJobs{
		BaseURL: grabJobsBaseURL,
		opts:    fetch.DefaultOptions(),
		rec:     rec,
		log:     log,
		now:     time.Now,
	}
}

// Name implements Connector.
func (c *GrabJobs) Name() string { return SourceGrabJobs }

// Search implements Connector. Any failure yields zero postings.
func (c *GrabJobs) Search(ctx context.Context, query string, limit int) []types.Posting {
	searchURL := fmt.Sprintf("%s/singapore/jobs?q=%s", c.BaseURL, url.QueryEscape(query))

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

	links := collectJobLinks(doc, c.BaseURL, "/singapore/job/", limit)
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
		postings = append(postings, c.fetchDetail(ctx, link))
		if len(postings) >= limit {
			break
		}
	}
	return postings
}

// fetchDetail opens one job page. On any failure it degrades to a link-only
// posting rather than dropping the record.
func (c *GrabJobs) fetchDetail(ctx context.Context, jobURL string) types.Posting {
	posting := types.Posting{URL: jobURL, Source: c.Name()}

	result, err := fetch.URL(ctx, jobURL, c.opts)
	if err != nil {
		c.log.Debug("grabjobs detail fetch failed", zap.String("url", jobURL), zap.Error(err))
		return posting
	}
	doc, err := result.Document()
	if err != nil {
		return posting
	}

	if h1 := fetch.CleanText(doc.Find("h1").First().Text()); h1 != "" {
		posting.Title = types.NewText(truncate(h1, 200))
	}
	if comp := fetch.CleanText(doc.Find("[class*='company']").First().Text()); comp != "" {
		posting.Employer = types.NewText(truncate(comp, 120))
	}

	var bullets []string
	doc.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		phrase := fetch.CleanText(li.Text())
		if len(phrase) >= minBulletLen && len(phrase) <= 80 {
			bullets = append(bullets, phrase)
		}
		return len(bullets) < types.MaxRequirementBullets
	})
	posting.Requirements = bullets

	pageText := fetch.CleanText(doc.Find("body").Text())
	posting.Type = detectJobType(pageText)
	if salary, ok := extractSalaryRange(pageText); ok {
		posting.Salary = types.NewText(salary)
	}
	posting.Posted = parseRelativePosted(pageText, c.now())

	return posting
}

func truncate(s string, max int) string {
	return strings.TrimSpace(fetch.Truncate(s, max))
}
