package scoring

import (
	"time"

	"github.com/seetoh/jobscout/internal/types"
)

// ClosingPassed states whether a posting's application window has closed as
// of today. An unknown or unparseable closing date is Unknown, never an
// error. A posting closing today has not yet passed.
func ClosingPassed(closing types.Date, today time.Time) types.ClosingPassed {
	day, ok := closing.Time()
	if !ok {
		return types.ClosingPassedUnknown
	}
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(todayDay) {
		return types.ClosingPassedYes
	}
	return types.ClosingPassedNo
}
