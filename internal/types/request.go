package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request defaults. MaxFinal and RawCap bound the output and the raw
// collection volume respectively.
const (
	DefaultPostedWithinDays = 30
	DefaultMaxFinal         = 100
	DefaultRawCap           = 200
)

// SearchRequest is one search run as submitted by the CLI. Validation
// failures here are the only error class that aborts a run; everything
// past this boundary degrades gracefully.
type SearchRequest struct {
	TargetRole       string   `json:"target_role" validate:"required"`
	PostedWithinDays int      `json:"posted_within_days" validate:"min=1,max=365"`
	Sources          []string `json:"sources" validate:"required,min=1,dive,required"`
	MaxFinal         int      `json:"max_final" validate:"min=10,max=100"`
	RawCap           int      `json:"raw_cap" validate:"min=1"`
	EmailTo          string   `json:"email_to,omitempty" validate:"omitempty,email"`
}

var requestValidator = validator.New()

// ApplyDefaults fills zero-valued optional fields and trims the role.
func (r *SearchRequest) ApplyDefaults() {
	r.TargetRole = strings.TrimSpace(r.TargetRole)
	if r.PostedWithinDays == 0 {
		r.PostedWithinDays = DefaultPostedWithinDays
	}
	if r.MaxFinal == 0 {
		r.MaxFinal = DefaultMaxFinal
	}
	if r.RawCap == 0 {
		r.RawCap = DefaultRawCap
	}
}

// Validate checks the request bounds. It must be called before any
// connector is invoked.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.TargetRole) == "" {
		return fmt.Errorf("target role must not be empty")
	}
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("invalid search request: %w", err)
	}
	return nil
}

// Note is one human-readable diagnostics row for the report's Notes sheet.
type Note struct {
	Label string
	Value string
}

// SearchResult is the finished output of one run: the ranked postings plus
// the diagnostics handed unmodified to the report builder.
type SearchResult struct {
	Final       []ScoredPosting
	Diagnostics []Note
	PerSource   map[string]int // raw postings collected per source
}
