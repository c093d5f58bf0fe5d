// Package types provides type definitions for structured data used throughout the jobscout pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Sentinel strings used at the serialization boundary (report columns and
// diagnostics). Inside the pipeline, absence is carried by the optional
// types below, never by sentinel comparison.
const (
	SentinelNotStated  = "Not stated"
	SentinelUnverified = "Unverified"
	// SentinelNoRequirements is the single-bullet placeholder used when no
	// requirement phrases could be extracted.
	SentinelNoRequirements = "• Not stated"
)

// DateLayout is the wire format for posted and closing dates.
const DateLayout = "2006-01-02"

// Text is an optional free-text field. The zero value is "not stated".
type Text struct {
	value string
	ok    bool
}

// NewText returns a Text holding the trimmed string, or an unset Text when
// the string is empty after trimming.
func NewText(s string) Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return Text{}
	}
	return Text{value: s, ok: true}
}

// Value returns the underlying string and whether it is set.
func (t Text) Value() (string, bool) {
	return t.value, t.ok
}

// IsSet reports whether the field holds a real value.
func (t Text) IsSet() bool {
	return t.ok
}

// Or returns the underlying string, or the given sentinel when unset.
func (t Text) Or(sentinel string) string {
	if t.ok {
		return t.value
	}
	return sentinel
}

// Date is an optional calendar date. The zero value is unverified/not stated.
type Date struct {
	t  time.Time
	ok bool
}

// NewDate returns a Date holding the calendar day of t (time-of-day dropped).
func NewDate(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{t: day, ok: true}
}

// dateLayouts are the formats sources have been observed to use, most
// specific first. A bare YYYY-MM-DD prefix is the final fallback.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseDate parses common ISO date forms. It returns an unset Date when the
// string is empty or unparseable.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return NewDate(parsed)
		}
	}
	// Fallback: many sources append noise after the date portion.
	if len(s) > len(DateLayout) {
		if parsed, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return NewDate(parsed)
		}
	}
	return Date{}
}

// Time returns the underlying day and whether it is set.
func (d Date) Time() (time.Time, bool) {
	return d.t, d.ok
}

// IsSet reports whether the date is known.
func (d Date) IsSet() bool {
	return d.ok
}

// Or returns the date formatted as YYYY-MM-DD, or the given sentinel when unset.
func (d Date) Or(sentinel string) string {
	if d.ok {
		return d.t.Format(DateLayout)
	}
	return sentinel
}

// JobType is the employment-type vocabulary reported by sources.
type JobType int

// Known employment types. JobTypeUnknown renders as "Not stated".
const (
	JobTypeUnknown JobType = iota
	JobTypeFullTime
	JobTypePartTime
	JobTypeContract
)

// String renders the report-facing label for the job type.
func (jt JobType) String() string {
	switch jt {
	case JobTypeFullTime:
		return "Full-time"
	case JobTypePartTime:
		return "Part-time"
	case JobTypeContract:
		return "Contract"
	default:
		return SentinelNotStated
	}
}

// ClassifyJobType maps free-text employment descriptions onto the JobType
// vocabulary. Temporary positions count as contract work.
func ClassifyJobType(s string) JobType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "full"):
		return JobTypeFullTime
	case strings.Contains(lower, "part"):
		return JobTypePartTime
	case strings.Contains(lower, "contract"), strings.Contains(lower, "temp"):
		return JobTypeContract
	default:
		return JobTypeUnknown
	}
}
