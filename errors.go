package fftgen

import (
	"errors"

	"github.com/cwbudde/fftgen/internal/codegen"
)

// Sentinel errors returned by Generate. They re-export the internal codegen
// package's sentinels so callers never need to import internal/codegen
// themselves.
var (
	// ErrInvalidLength is returned when Config.N is not a positive power of
	// two.
	ErrInvalidLength = codegen.ErrInvalidLength

	// ErrInvariantViolation names a violation of the permutation planner's
	// internal read-before-write invariant. The planner does not check that
	// invariant, so Generate does not currently return this error.
	ErrInvariantViolation = codegen.ErrInvariantViolation

	// ErrAllocation wraps a runtime allocation failure recovered while
	// generating. Go has no malloc-style failure return; this sentinel
	// gives callers a stable way to detect the case, matching the
	// original tool's fatal "Error allocating memory" exit path.
	ErrAllocation = errors.New("fftgen: allocation failure")
)
