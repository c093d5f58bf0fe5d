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

const founditBaseURL = "https://www.foundit.sg"

// Foundit scrapes the Foundit search results page and opens each job page.
// Detail pages carry a schema.org JobPosting JSON-LD block, which is the
// richest structured data any of the sources exposes; page-text fallbacks
// cover the fields the block omits.
type Foundit struct {
	BaseURL string
	opts    *fetch.Options
	rec     *Recorder
	log     *zap.Logger
	now     func() time.Time
}

// NewFoundit builds the Foundit connector.
func NewFoundit(rec *Recorder, log *zap.Logger) *Foundit {
	return &Foundit{
		BaseURL: founditBaseURL,
		opts:    fetch.DefaultOptions(),
		rec:     rec,
		log:     log,
		now:     time.Now,
	}
}

// Name implements Connector.
func (c *Foundit) Name() string { return SourceFoundit }

// Search implements Connector. Any failure yields zero postings.
func (c *Foundit) Search(ctx context.Context, query string, limit int) []types.Posting {
	searchURL := fmt.Sprintf("%s/srp/results?query=%s&locations=Singapore",
		c.BaseURL, url.QueryEscape(strings.TrimSpace(query)))

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

	// Collect more links than needed; detail pages without a title are
	// dropped below.
	links := collectJobLinks(doc, c.BaseURL, "/job/", limit*2)
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

	var postings []types.Posting
	for _, link := range links {
		posting, ok := c.fetchDetail(ctx, link)
		if ok {
			postings = append(postings, posting)
		}
		if len(postings) >= limit {
			break
		}
	}
	return postings
}

// fetchDetail opens one job page and extracts what it can. It reports false
// when no title could be found, since a titleless Foundit page is a
// placeholder rather than a posting.
func (c *Foundit) fetchDetail(ctx context.Context, jobURL string) (types.Posting, bool) {
	posting := types.Posting{URL: jobURL, Source: c.Name()}

	result, err := fetch.URL(ctx, jobURL, c.opts)
	if err != nil {
		c.log.Debug("foundit detail fetch failed", zap.String("url", jobURL), zap.Error(err))
		return posting, false
	}
	doc, err := result.Document()
	if err != nil {
		return posting, false
	}

	title := fetch.CleanText(doc.Find("h1").First().Text())
	if title == "" {
		if og, ok := doc.Find(`meta[property='og:title']`).Attr("content"); ok {
			title = fetch.CleanText(og)
		}
	}
	if title == "" {
		return posting, false
	}
	posting.Title = types.NewText(truncate(title, 200))

	if jp, ok := findJobPosting(doc); ok {
		posting.Employer = jp.Employer
		posting.Posted = jp.Posted
		posting.Closing = jp.Closing
		posting.Salary = jp.Salary
		posting.Type = jp.Type
		posting.Requirements = extractBullets(jp.Description, types.MaxRequirementBullets)
	}

	if !posting.Posted.IsSet() {
		pageText := fetch.CleanText(doc.Find("body").Text())
		posting.Posted = parseRelativePosted(pageText, c.now())
	}
	if len(posting.Requirements) == 0 {
		posting.Requirements = c.requirementsFromSections(doc)
	}

	return posting, true
}

// requirementsFromSections scans generic page sections for requirement-like
// text when the JSON-LD description yielded nothing.
var requirementMarkers = []string{"responsibil", "require", "skill", "experience"}

func (c *Foundit) requirementsFromSections(doc *goquery.Document) []string {
	var blocks []string
	doc.Find("div, section").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text := fetch.CleanText(el.Text())
		if len(text) < 40 || len(text) > 250 {
			return true
		}
		lower := strings.ToLower(text)
		for _, marker := range requirementMarkers {
			if strings.Contains(lower, marker) {
				blocks = append(blocks, text)
				break
			}
		}
		return len(blocks) < 3
	})
	if len(blocks) == 0 {
		return nil
	}
	return extractBullets(strings.Join(blocks, " "), types.MaxRequirementBullets)
}
