package connectors

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

// Requirement bullet length bounds: long enough to carry meaning, short
// enough to stay bullet-shaped.
const (
	minBulletLen = 8
	maxBulletLen = 90
)

// bulletFluff marks generic page boilerplate that is never a requirement.
var bulletFluff = []string{"apply", "click", "privacy", "equal opportunity"}

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	bulletSplitRe = regexp.MustCompile(`[\x{2022}\n\r]|(?:\.\s+)|(?:;\s+)`)
	salaryRe      = regexp.MustCompile(`\$\s?\d[\d,]*\s*-\s*\$\s?\d[\d,]*`)
	fullTimeRe    = regexp.MustCompile(`(?i)\bFull[- ]?time\b`)
	partTimeRe    = regexp.MustCompile(`(?i)\bPart[- ]?time\b`)
	contractRe    = regexp.MustCompile(`(?i)\bContract\b`)
	postedDaysRe  = regexp.MustCompile(`(?i)posted\s+(\d+)\s+day`)
	postedHoursRe = regexp.MustCompile(`(?i)posted\s+(\d+)\s+hour`)
	yesterdayRe   = regexp.MustCompile(`(?i)posted\s+yesterday`)
	nonSlugRe     = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe   = regexp.MustCompile(`\s+`)
)

// extractBullets turns a job description into at most max short bullet
// phrases, deduplicated case-insensitively in order of appearance.
func extractBullets(desc string, max int) []string {
	desc = htmlTagRe.ReplaceAllString(desc, " ")
	desc = fetch.CleanText(desc)
	if desc == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, part := range bulletSplitRe.Split(desc, -1) {
		// The splitter only consumes periods followed by whitespace, so the
		// final sentence keeps its period; strip it here.
		phrase := strings.TrimSuffix(fetch.CleanText(part), ".")
		if len(phrase) < minBulletLen || len(phrase) > maxBulletLen {
			continue
		}
		if isFluff(phrase) {
			continue
		}
		key := strings.ToLower(phrase)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, phrase)
		if len(out) >= max {
			break
		}
	}

	if len(out) == 0 {
		// Fall back to a short prefix of the description.
		short := strings.TrimSpace(fetch.Truncate(desc, 80))
		if short != "" {
			out = []string{short}
		}
	}
	return out
}

func isFluff(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, f := range bulletFluff {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// extractSalaryRange finds a "$x - $y" style range in free page text.
func extractSalaryRange(pageText string) (string, bool) {
	m := salaryRe.FindString(pageText)
	if m == "" {
		return "", false
	}
	return fetch.CleanText(m), true
}

// detectJobType scans free page text for employment-type markers.
func detectJobType(pageText string) types.JobType {
	switch {
	case fullTimeRe.MatchString(pageText):
		return types.JobTypeFullTime
	case partTimeRe.MatchString(pageText):
		return types.JobTypePartTime
	case contractRe.MatchString(pageText):
		return types.JobTypeContract
	default:
		return types.JobTypeUnknown
	}
}

// parseRelativePosted converts "Posted 5 days ago" style text into a date
// relative to today. Hours collapse to today.
func parseRelativePosted(pageText string, today time.Time) types.Date {
	if m := postedDaysRe.FindStringSubmatch(pageText); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return types.NewDate(today.AddDate(0, 0, -days))
		}
	}
	if postedHoursRe.MatchString(pageText) {
		return types.NewDate(today)
	}
	if yesterdayRe.MatchString(pageText) {
		return types.NewDate(today.AddDate(0, 0, -1))
	}
	return types.Date{}
}

// slugify converts a query into a URL path slug ("community partnership"
// becomes "community-partnership").
func slugify(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = nonSlugRe.ReplaceAllString(q, " ")
	q = slugSpaceRe.ReplaceAllString(strings.TrimSpace(q), "-")
	q = strings.Trim(q, "-")
	if q == "" {
		return "jobs"
	}
	return q
}

// collectJobLinks harvests unique absolute links whose href contains
// pathMarker, resolving relative hrefs against base, up to max links.
func collectJobLinks(doc *goquery.Document, base, pathMarker string, max int) []string {
	var links []string
	seen := make(map[string]struct{})
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if href == "" || !strings.Contains(href, pathMarker) {
			return true
		}
		full := href
		if !strings.HasPrefix(href, "http") {
			full = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
		}
		if _, dup := seen[full]; dup {
			return true
		}
		seen[full] = struct{}{}
		links = append(links, full)
		return len(links) < max
	})
	return links
}
