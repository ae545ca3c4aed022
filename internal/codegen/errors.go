package codegen

import "errors"

// Sentinel errors returned by the generator's internal stages. The root
// fftgen package re-exports these directly.
var (
	// ErrInvalidLength is returned when Config.N is not a positive power of two.
	ErrInvalidLength = errors.New("fftgen: invalid transform length")

	// ErrInvariantViolation names a violation of the permutation planner's
	// read-before-write invariant. The planner does not check that
	// invariant, so no code path in this package returns this error.
	ErrInvariantViolation = errors.New("fftgen: permutation planner invariant violated")
)
