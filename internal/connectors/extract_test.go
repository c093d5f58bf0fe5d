package connectors

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seetoh/jobscout/internal/types"
)

func TestExtractBullets_ShortPhrases(t *testing.T) {
	desc := "Manage community partners. Plan outreach events; Build stakeholder relationships. Apply now on our website!"
	bullets := extractBullets(desc, 3)

	assert.Equal(t, []string{
		"Manage community partners",
		"Plan outreach events",
		"Build stakeholder relationships",
	}, bullets)
}

func TestExtractBullets_SkipsFluffAndDuplicates(t *testing.T) {
	desc := "Manage partners. manage partners. Click here to apply. Review our privacy policy. Coordinate volunteers."
	bullets := extractBullets(desc, 3)

	assert.Equal(t, []string{"Manage partners", "Coordinate volunteers"}, bullets)
}

func TestExtractBullets_StripsTrailingPeriod(t *testing.T) {
	// A lone final sentence is never split, so its period must still go.
	bullets := extractBullets("Support fundraising campaigns.", 3)

	assert.Equal(t, []string{"Support fundraising campaigns"}, bullets)
}

func TestExtractBullets_StripsHTMLTags(t *testing.T) {
	desc := "<ul><li>Handle vendor contracts</li><li>Prepare tender documents</li></ul>"
	bullets := extractBullets(desc, 3)

	require.NotEmpty(t, bullets)
	for _, b := range bullets {
		assert.NotContains(t, b, "<")
	}
}

func TestExtractBullets_FallsBackToPrefix(t *testing.T) {
	// One long sentence with no split points inside the length window.
	desc := strings.Repeat("x", 120)
	bullets := extractBullets(desc, 3)

	require.Len(t, bullets, 1)
	assert.LessOrEqual(t, len(bullets[0]), 80)
}

func TestExtractBullets_Empty(t *testing.T) {
	assert.Empty(t, extractBullets("", 3))
}

func TestExtractSalaryRange(t *testing.T) {
	salary, ok := extractSalaryRange("We offer $ 3,500 - $4,200 per month plus benefits")
	require.True(t, ok)
	assert.Equal(t, "$ 3,500 - $4,200", salary)

	_, ok = extractSalaryRange("competitive salary")
	assert.False(t, ok)
}

func TestDetectJobType(t *testing.T) {
	assert.Equal(t, types.JobTypeFullTime, detectJobType("This is a Full-Time role"))
	assert.Equal(t, types.JobTypeFullTime, detectJobType("full time position"))
	assert.Equal(t, types.JobTypePartTime, detectJobType("Part-time weekend shifts"))
	assert.Equal(t, types.JobTypeContract, detectJobType("12-month Contract role"))
	assert.Equal(t, types.JobTypeUnknown, detectJobType("internship programme"))
}

func TestParseRelativePosted(t *testing.T) {
	today := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)

	d := parseRelativePosted("Posted 5 days ago", today)
	assert.Equal(t, "2025-01-05", d.Or(types.SentinelUnverified))

	d = parseRelativePosted("posted 3 hours ago", today)
	assert.Equal(t, "2025-01-10", d.Or(types.SentinelUnverified))

	d = parseRelativePosted("Posted yesterday", today)
	assert.Equal(t, "2025-01-09", d.Or(types.SentinelUnverified))

	d = parseRelativePosted("no date here", today)
	assert.False(t, d.IsSet())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "community-partnership", slugify("Community Partnership"))
	assert.Equal(t, "c-net-developer", slugify("C#/.NET Developer"))
	assert.Equal(t, "jobs", slugify("!!!"))
}

func TestCollectJobLinks(t *testing.T) {
	html := `<html><body>
		<a href="/singapore-job-ad/123">Job A</a>
		<a href="https://other.example.com/singapore-job-ad/456">Job B</a>
		<a href="/singapore-job-ad/123">duplicate</a>
		<a href="/about-us">not a job</a>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	links := collectJobLinks(doc, "https://www.fastjobs.sg", "/singapore-job-ad/", 10)
	assert.Equal(t, []string{
		"https://www.fastjobs.sg/singapore-job-ad/123",
		"https://other.example.com/singapore-job-ad/456",
	}, links)
}

func TestCollectJobLinks_RespectsLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 20; i++ {
		sb.WriteString(`<a href="/singapore/job/` + strings.Repeat("x", i+1) + `">j</a>`)
	}
	sb.WriteString("</body></html>")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	links := collectJobLinks(doc, "https://grabjobs.co", "/singapore/job/", 5)
	assert.Len(t, links, 5)
}
