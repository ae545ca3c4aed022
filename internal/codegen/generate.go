package codegen

import (
	"fmt"
	"io"
)

// license is the GPL-3 banner carried over from the original generator,
// emitted verbatim when Config.License is set.
const license = `/*
 * This code was generated by fftgen, a free software FFT/IFFT code
 * generator distributed under the terms of the GNU General Public
 * License, version 3 or later. See <https://www.gnu.org/licenses/>.
 */
`

// Stats reports counters from one Generate call, exposed for verbose
// diagnostics only; nothing downstream depends on it.
type Stats struct {
	Swaps       int
	PreAssigns  int
	Stages      int
	Butterflies int
}

// Generate writes the flat FFT/IFFT fragment for cfg to w, returning the
// counters gathered along the way.
func Generate(w io.Writer, cfg Config) (Stats, error) {
	n, err := normalize(cfg)
	if err != nil {
		return Stats{}, err
	}

	perm := planPermutation(n.N, n.half, n.SymmIn)

	out := &writer{out: w, indent: n.Indent}

	if n.License {
		out.raw(license)
	}

	if n.Header != "" {
		out.raw(n.Header)
	}

	emitPermutation(out, n.N, n.half, n.RealIn, perm)

	stats := emitButterflies(out, n)

	if n.Footer != "" {
		out.raw(n.Footer)
	}

	if out.err != nil {
		return Stats{}, fmt.Errorf("fftgen: write: %w", out.err)
	}

	return Stats{
		Swaps:       len(perm.Swaps),
		PreAssigns:  len(perm.PreAssigns),
		Stages:      stats.Stages,
		Butterflies: stats.Butterflies,
	}, nil
}
