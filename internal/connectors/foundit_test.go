package connectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/types"
)

const founditDetailHTML = `<html><head>
	<script type="application/ld+json">
	{
		"@type": "JobPosting",
		"hiringOrganization": {"name": "Community Chest"},
		"datePosted": "2024-11-20",
		"validThrough": "2025-01-31",
		"employmentType": "CONTRACT",
		"description": "Develop partnership programmes. Support fundraising campaigns."
	}
	</script>
</head><body>
	<h1>Partnership Development Executive</h1>
</body></html>`

func newFounditServer(detail string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/srp/results") {
			_, _ = w.Write([]byte(`<html><body>
				<a href="/job/pde-99">Partnership Development Executive</a>
			</body></html>`))
			return
		}
		_, _ = w.Write([]byte(detail))
	}))
}

func TestFoundit_SearchWithJSONLD(t *testing.T) {
	srv := newFounditServer(founditDetailHTML)
	defer srv.Close()

	c := NewFoundit(NewRecorder(), zap.NewNop())
	c.BaseURL = srv.URL

	postings := c.Search(context.Background(), "Community Partnership", 80)
	require.Len(t, postings, 1)
	p := postings[0]

	assert.Equal(t, "Partnership Development Executive", p.Title.Or(""))
	assert.Equal(t, "Community Chest", p.Employer.Or(""))
	assert.Equal(t, "2024-11-20", p.Posted.Or(types.SentinelUnverified))
	assert.Equal(t, "2025-01-31", p.Closing.Or(types.SentinelNotStated))
	assert.Equal(t, types.JobTypeContract, p.Type)
	assert.Equal(t, []string{
		"Develop partnership programmes",
		"Support fundraising campaigns",
	}, p.Requirements)
}

func TestFoundit_TitleFromOGMeta(t *testing.T) {
	detail := `<html><head>
		<meta property="og:title" content="Outreach Officer"/>
	</head><body><p>no h1 here</p></body></html>`
	srv := newFounditServer(detail)
	defer srv.Close()

	c := NewFoundit(NewRecorder(), zap.NewNop())
	c.BaseURL = srv.URL

	postings := c.Search(context.Background(), "outreach", 80)
	require.Len(t, postings, 1)
	assert.Equal(t, "Outreach Officer", postings[0].Title.Or(""))
}

func TestFoundit_DropsTitlelessPages(t *testing.T) {
	srv := newFounditServer("<html><body><p>placeholder page</p></body></html>")
	defer srv.Close()

	c := NewFoundit(NewRecorder(), zap.NewNop())
	c.BaseURL = srv.URL

	assert.Empty(t, c.Search(context.Background(), "role", 80))
}

func TestFoundit_BlockedSearchReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	rec := NewRecorder()
	c := NewFoundit(rec, zap.NewNop())
	c.BaseURL = srv.URL

	assert.Empty(t, c.Search(context.Background(), "role", 80))
	require.Len(t, rec.Entries(), 1)
	assert.NotEmpty(t, rec.Entries()[0].Failure)
}
