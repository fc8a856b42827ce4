package powerset

import "errors"

// MaxElements bounds the size of the base set. 2^20 subsets need a few
// megabytes of index tables; larger sets are rejected.
const MaxElements = 20

// Sentinel errors for power-set enumeration.
var (
	// ErrNegativeSize is returned when the base set size is negative.
	ErrNegativeSize = errors.New("powerset: negative size")

	// ErrTooLarge is returned when the base set exceeds MaxElements.
	ErrTooLarge = errors.New("powerset: base set too large")

	// ErrInvalidSubset is returned when a subset is unsorted, has duplicates,
	// or holds an element outside [0, n).
	ErrInvalidSubset = errors.New("powerset: invalid subset")

	// ErrInvalidID is returned when an ID is outside [0, 2^n).
	ErrInvalidID = errors.New("powerset: invalid subset id")
)
