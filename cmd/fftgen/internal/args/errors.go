package args

import "errors"

// Sentinel errors returned while parsing the command line.
var (
	// ErrUnknownOption is returned for a flag not present in the option table.
	ErrUnknownOption = errors.New("fftgen: unknown option")

	// ErrMissingPoints is returned when -n/--points was never given.
	ErrMissingPoints = errors.New("fftgen: no number of points specified")

	// ErrInvalidOptionValue is returned when an option requiring a value
	// (currently only -n/--points) is given one that fails to parse.
	ErrInvalidOptionValue = errors.New("fftgen: invalid option value")
)
