package codegen

import (
	"fmt"
	"math"

	"github.com/cwbudde/fftgen/internal/mathutil"
)

// DefaultNumberFormat is the printf-style format used for generic real
// constants when Config.NumberFormat is empty.
const DefaultNumberFormat = "%21.14e"

// Config describes one generation request. It is the internal mirror of the
// public fftgen.Config; see that type for field documentation.
type Config struct {
	N            int
	Inverse      bool
	RealIn       bool
	RealOut      bool
	SymmIn       bool
	SymmOut      bool
	License      bool
	NumberFormat string
	Indent       string
	Header       string
	Footer       string
}

// normalized is a Config with its derived quantities filled in.
type normalized struct {
	Config
	half int
	th   thresholds
}

// normalize validates cfg, fills in the default number format, and derives
// n/2 and the classifier thresholds described in §3 of the specification.
func normalize(cfg Config) (normalized, error) {
	if cfg.N <= 0 || !mathutil.IsPowerOfTwo(cfg.N) {
		return normalized{}, fmt.Errorf("fftgen: n=%d: %w", cfg.N, ErrInvalidLength)
	}

	if cfg.NumberFormat == "" {
		cfg.NumberFormat = DefaultNumberFormat
	}

	half := cfg.N / 2

	var th thresholds
	if half > 0 {
		angle := math.Pi / float64(half)
		th.eps = 0.5 * math.Sin(angle)
		th.epsOne = 1.0 - 0.5*(1.0-math.Cos(angle))
		th.epsMOne = -th.epsOne
	}

	return normalized{Config: cfg, half: half, th: th}, nil
}
