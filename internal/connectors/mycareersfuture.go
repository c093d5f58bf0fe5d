package connectors

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

const myCareersFutureBaseURL = "https://www.mycareersfuture.gov.sg"

// MyCareersFuture renders its listings entirely client-side, so a plain
// HTTP fetch returns an empty shell. With useBrowser enabled the connector
// renders the search page in a headless browser and harvests job links;
// without it, the source contributes zero results and the diagnostics
// explain why.
type MyCareersFuture struct {
	BaseURL    string
	UseBrowser bool
	opts       *fetch.Options
	rec        *Recorder
	log        *zap.Logger
}

// NewMyCareersFuture builds the MyCareersFuture connector.
func NewMyCareersFuture(rec *Recorder, log *zap.Logger, useBrowser bool) *MyCareersFuture {
	return &MyCareersFuture{
		BaseURL:    myCareersFutureBaseURL,
		UseBrowser: useBrowser,
		opts:       fetch.DefaultOptions(),
		rec:        rec,
		log:        log,
	}
}

// Name implements Connector.
func (c *MyCareersFuture) Name() string { return SourceMyCareersFuture }

// Search implements Connector. Any failure yields zero postings.
func (c *MyCareersFuture) Search(ctx context.Context, query string, limit int) []types.Posting {
	searchURL := fmt.Sprintf("%s/search?search=%s&sortBy=relevancy", c.BaseURL, url.QueryEscape(query))

	if !c.UseBrowser {
		c.rec.Record(Diagnostic{
			Source:  c.Name(),
			Query:   query,
			URL:     searchURL,
			Failure: "listings are JavaScript-rendered; run with browser rendering enabled",
		})
		return nil
	}

	html, err := fetch.RenderedHTML(ctx, searchURL, fetch.DefaultTimeout)
	if err != nil {
		c.rec.Record(Diagnostic{Source: c.Name(), Query: query, URL: searchURL, Failure: err.Error()})
		c.log.Debug("mycareersfuture browser render failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	result := &fetch.Result{URL: searchURL, FinalURL: searchURL, HTML: html, Bytes: len(html)}
	doc, err := result.Document()
	if err != nil {
		c.rec.Record(Diagnostic{Source: c.Name(), Query: query, URL: searchURL, Failure: err.Error()})
		return nil
	}

	links := collectJobLinks(doc, c.BaseURL, "/job/", limit)
	c.rec.Record(Diagnostic{
		Source:    c.Name(),
		Query:     query,
		URL:       searchURL,
		FinalURL:  searchURL,
		PageTitle: fetch.Title(doc, 80),
		Bytes:     result.Bytes,
		Links:     len(links),
	})

	postings := make([]types.Posting, 0, len(links))
	for _, link := range links {
		posting := types.Posting{URL: link, Source: c.Name()}
		if card := doc.Find(fmt.Sprintf(`a[href*='%s']`, trimBase(link, c.BaseURL))).First(); card.Length() > 0 {
			if title := fetch.CleanText(card.Find("[data-testid='job-card__job-title']").Text()); title != "" {
				posting.Title = types.NewText(truncate(title, 200))
			}
			if employer := fetch.CleanText(card.Find("[data-testid='company-hire-info']").Text()); employer != "" {
				posting.Employer = types.NewText(truncate(employer, 120))
			}
			if salary, ok := extractSalaryRange(fetch.CleanText(card.Text())); ok {
				posting.Salary = types.NewText(salary)
			}
			posting.Type = detectJobType(fetch.CleanText(card.Text()))
		}
		postings = append(postings, posting)
	}
	return postings
}

// trimBase strips the base origin from an absolute link so it can be used
// inside an attribute-contains selector.
func trimBase(link, base string) string {
	if len(link) > len(base) && link[:len(base)] == base {
		return link[len(base):]
	}
	return link
}
