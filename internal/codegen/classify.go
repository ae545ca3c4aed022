package codegen

import "math"

// TwiddleClass tags a twiddle-factor component as exactly zero, exactly one,
// exactly minus one, or some other value that must be printed as a literal.
type TwiddleClass int

const (
	ClassZero TwiddleClass = iota
	ClassPlusOne
	ClassMinusOne
	ClassGeneric
)

// thresholds holds the ε, ε₊, ε₋ bounds used to classify a twiddle
// component. They are derived from the minimum non-trivial twiddle angle
// π/(n/2) and are tight enough to recognize the exact values 0, ±1 that
// arise at m ∈ {0, k/2} without misclassifying a neighboring twiddle.
type thresholds struct {
	eps    float64
	epsOne float64
	epsMOne float64
}

// classify buckets w into one of the four TwiddleClass cases.
func classify(w float64, th thresholds) TwiddleClass {
	if math.Abs(w) <= th.eps {
		return ClassZero
	}

	if w >= th.epsOne {
		return ClassPlusOne
	}

	if w <= th.epsMOne {
		return ClassMinusOne
	}

	return ClassGeneric
}
