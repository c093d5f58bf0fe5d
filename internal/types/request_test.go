package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SearchRequest {
	r := SearchRequest{
		TargetRole: "Community Partnership",
		Sources:    []string{"FastJobs"},
	}
	r.ApplyDefaults()
	return r
}

func TestSearchRequest_ApplyDefaults(t *testing.T) {
	r := SearchRequest{TargetRole: "  Procurement  ", Sources: []string{"Foundit"}}
	r.ApplyDefaults()

	assert.Equal(t, "Procurement", r.TargetRole)
	assert.Equal(t, DefaultPostedWithinDays, r.PostedWithinDays)
	assert.Equal(t, DefaultMaxFinal, r.MaxFinal)
	assert.Equal(t, DefaultRawCap, r.RawCap)
}

func TestSearchRequest_Valid(t *testing.T) {
	r := validRequest()
	require.NoError(t, r.Validate())
}

func TestSearchRequest_EmptyRole(t *testing.T) {
	r := validRequest()
	r.TargetRole = "   "
	assert.Error(t, r.Validate())
}

func TestSearchRequest_NoSources(t *testing.T) {
	r := validRequest()
	r.Sources = nil
	assert.Error(t, r.Validate())
}

func TestSearchRequest_MaxFinalOutOfRange(t *testing.T) {
	r := validRequest()
	r.MaxFinal = 5
	assert.Error(t, r.Validate())

	r.MaxFinal = 101
	assert.Error(t, r.Validate())
}

func TestSearchRequest_PostedWithinDaysOutOfRange(t *testing.T) {
	r := validRequest()
	r.PostedWithinDays = 0
	assert.Error(t, r.Validate())

	r.PostedWithinDays = 366
	assert.Error(t, r.Validate())
}

func TestSearchRequest_InvalidEmail(t *testing.T) {
	r := validRequest()
	r.EmailTo = "not-an-address"
	assert.Error(t, r.Validate())

	r.EmailTo = "someone@example.com"
	assert.NoError(t, r.Validate())
}
