package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seetoh/jobscout/internal/types"
)

var fixedToday = time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)

func TestClosingPassed_PastDate(t *testing.T) {
	got := ClosingPassed(types.ParseDate("2020-01-01"), fixedToday)
	assert.Equal(t, types.ClosingPassedYes, got)
}

func TestClosingPassed_FutureDate(t *testing.T) {
	got := ClosingPassed(types.ParseDate("2030-01-01"), fixedToday)
	assert.Equal(t, types.ClosingPassedNo, got)
}

func TestClosingPassed_Today(t *testing.T) {
	got := ClosingPassed(types.ParseDate("2025-01-01"), fixedToday)
	assert.Equal(t, types.ClosingPassedNo, got)
}

func TestClosingPassed_Unknown(t *testing.T) {
	assert.Equal(t, types.ClosingPassedUnknown, ClosingPassed(types.Date{}, fixedToday))
	assert.Equal(t, types.ClosingPassedUnknown, ClosingPassed(types.ParseDate("soon"), fixedToday))
	assert.Equal(t, types.ClosingPassedUnknown, ClosingPassed(types.ParseDate(types.SentinelNotStated), fixedToday))
}
