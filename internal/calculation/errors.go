package calculation

import (
	"errors"

	"github.com/rpgo/treasury-calculator/pkg/dateutil"
)

var (
	// ErrInvalidInput reports a non-positive amount, an out-of-range rate or
	// dates in the wrong order.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDate reports an unparsable or unset calendar date.
	ErrInvalidDate = dateutil.ErrInvalidDate
)
