package wave

import "github.com/pkg/errors"

// Configuration errors returned by New. Both are fatal: the explicit scheme
// is not valid for the parameters that produced them.
var (
	// ErrInvalidParams indicates grid, domain, coefficient or timing values
	// outside their valid range.
	ErrInvalidParams = errors.New("wave: invalid parameters")

	// ErrUnstable indicates the Courant condition rx+ry <= 1 is violated.
	ErrUnstable = errors.New("wave: courant condition violated")
)
