package connectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/types"
)

const grabJobsDetailHTML = `<html><body>
	<h1>Community Partnerships Executive</h1>
	<div class="company-name">ABC Foundation</div>
	<ul>
		<li>Manage community partners</li>
		<li>Plan outreach events</li>
		<li>ok</li>
		<li>Coordinate volunteers across programmes</li>
	</ul>
	<p>Full-time position. Salary $3,200 - $3,800. Posted 4 days ago.</p>
</body></html>`

func newGrabJobsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/singapore/jobs") {
			_, _ = w.Write([]byte(`<html><body>
				<a href="/singapore/job/cpe-1">Community Partnerships Executive</a>
			</body></html>`))
			return
		}
		_, _ = w.Write([]byte(grabJobsDetailHTML))
	}))
}

func TestGrabJobs_SearchWithDetail(t *testing.T) {
	srv := newGrabJobsServer(t)
	defer srv.Close()

	c := NewGrabJobs(NewRecorder(), zap.NewNop())
	c.BaseURL = srv.URL
	c.now = func() time.Time { return time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC) }

	postings := c.Search(context.Background(), "Community Partnership", 80)
	require.Len(t, postings, 1)
	p := postings[0]

	assert.Equal(t, "Community Partnerships Executive", p.Title.Or(""))
	assert.Equal(t, "ABC Foundation", p.Employer.Or(""))
	assert.Equal(t, SourceGrabJobs, p.Source)
	assert.Equal(t, types.JobTypeFullTime, p.Type)
	assert.Equal(t, "$3,200 - $3,800", p.Salary.Or(""))
	assert.Equal(t, "2025-01-06", p.Posted.Or(types.SentinelUnverified))

	// The two-character "ok" bullet is outside the length window.
	assert.Equal(t, []string{
		"Manage community partners",
		"Plan outreach events",
		"Coordinate volunteers across programmes",
	}, p.Requirements)
}

func TestGrabJobs_DetailFailureDegradesToLinkOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/singapore/jobs") {
			_, _ = w.Write([]byte(`<html><body><a href="/singapore/job/x">x</a></body></html>`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGrabJobs(NewRecorder(), zap.NewNop())
	c.BaseURL = srv.URL

	postings := c.Search(context.Background(), "role", 80)
	require.Len(t, postings, 1)
	assert.False(t, postings[0].Title.IsSet())
	assert.Equal(t, srv.URL+"/singapore/job/x", postings[0].URL)
}

func TestGrabJobs_SearchFailureReturnsEmpty(t *testing.T) {
	rec := NewRecorder()
	c := NewGrabJobs(rec, zap.NewNop())
	c.BaseURL = "http://127.0.0.1:1"

	assert.Empty(t, c.Search(context.Background(), "role", 80))

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, SourceGrabJobs, entries[0].Source)
	assert.Equal(t, "role", entries[0].Query)
	assert.NotEmpty(t, entries[0].Failure)
}

func TestTruncate_KeepsMultibyteRunesIntact(t *testing.T) {
	got := truncate("社区伙伴关系主管职位", 7)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "社区伙伴关系主", got)
}
