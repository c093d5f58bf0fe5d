package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewText_TrimsAndDetectsEmpty(t *testing.T) {
	set := NewText("  ABC Foundation ")
	v, ok := set.Value()
	assert.True(t, ok)
	assert.Equal(t, "ABC Foundation", v)

	unset := NewText("   ")
	assert.False(t, unset.IsSet())
	assert.Equal(t, SentinelNotStated, unset.Or(SentinelNotStated))
}

func TestText_OrReturnsValueWhenSet(t *testing.T) {
	assert.Equal(t, "SGD 3000-4000", NewText("SGD 3000-4000").Or(SentinelNotStated))
}

func TestParseDate_CommonForms(t *testing.T) {
	cases := []string{
		"2024-05-17",
		"2024-05-17T08:30:00",
		"2024-05-17T08:30:00.000Z",
		"2024-05-17T08:30:00+08:00",
		"2024-05-17 some trailing noise",
	}
	for _, in := range cases {
		d := ParseDate(in)
		assert.True(t, d.IsSet(), "input %q", in)
		assert.Equal(t, "2024-05-17", d.Or(SentinelUnverified), "input %q", in)
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, in := range []string{"", "yesterday", "17 May", "2024/05/17"} {
		d := ParseDate(in)
		assert.False(t, d.IsSet(), "input %q", in)
		assert.Equal(t, SentinelUnverified, d.Or(SentinelUnverified))
	}
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(2025, 1, 3, 23, 59, 1, 0, time.UTC))
	day, ok := d.Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), day)
}

func TestClassifyJobType(t *testing.T) {
	assert.Equal(t, JobTypeFullTime, ClassifyJobType("FULL_TIME"))
	assert.Equal(t, JobTypeFullTime, ClassifyJobType("Full-time"))
	assert.Equal(t, JobTypePartTime, ClassifyJobType("part time"))
	assert.Equal(t, JobTypeContract, ClassifyJobType("Contract"))
	assert.Equal(t, JobTypeContract, ClassifyJobType("Temporary"))
	assert.Equal(t, JobTypeUnknown, ClassifyJobType("internship"))
	assert.Equal(t, JobTypeUnknown, ClassifyJobType(""))
}

func TestJobType_String(t *testing.T) {
	assert.Equal(t, "Full-time", JobTypeFullTime.String())
	assert.Equal(t, "Part-time", JobTypePartTime.String())
	assert.Equal(t, "Contract", JobTypeContract.String())
	assert.Equal(t, SentinelNotStated, JobTypeUnknown.String())
}

func TestPosting_RequirementsText(t *testing.T) {
	none := Posting{}
	assert.Equal(t, SentinelNoRequirements, none.RequirementsText())

	p := Posting{Requirements: []string{"Manage partners", "Plan outreach events"}}
	assert.Equal(t, "• Manage partners\n• Plan outreach events", p.RequirementsText())
}
