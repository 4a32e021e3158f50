package calculation

import (
	"time"

	"github.com/rpgo/treasury-calculator/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Today is the current calendar date as seen by the engine.
func Today() time.Time {
	return dateutil.Normalize(nowFunc())
}
