package codegen

import (
	"fmt"
	"math"
)

// butterflyStats reports per-run counters used only for verbose diagnostics.
type butterflyStats struct {
	Stages      int
	Butterflies int
}

// emitButterflies walks the m stages of the Cooley-Tukey transform, emitting
// each butterfly's statements with the zero-propagation folding from §4.2.
func emitButterflies(w *writer, n normalized) butterflyStats {
	nn := n.N - 1
	nzi := newNziTracker(n.N, n.RealIn)

	var stats butterflyStats

	for k := 1; k < n.N; k *= 2 {
		istep := 2 * k
		lastStage := istep == n.N
		stats.Stages++

		for m := 0; m < k; m++ {
			a := -math.Pi * float64(m) / float64(k)
			wr := math.Cos(a)
			wi := math.Sin(a)

			if n.Inverse {
				wi = -wi
			}

			steps := (nn - m) / istep
			for s := 0; s <= steps; s++ {
				ii := m + s*istep
				jj := ii + k

				emitButterfly(w, n, butterflyArgs{
					ii: ii, jj: jj,
					wr: wr, wi: wi,
					lastStage: lastStage,
				}, nzi)
				stats.Butterflies++
			}
		}
	}

	return stats
}

type butterflyArgs struct {
	ii, jj    int
	wr, wi    float64
	lastStage bool
}

// emitButterfly emits up to six statements for one radix-2 butterfly,
// folding away multiplications by a classified zero/one coefficient and
// propagating known-zero imaginary parts through nzi.
func emitButterfly(w *writer, n normalized, b butterflyArgs, nzi *nziTracker) {
	xrjj := indexed("xr", b.jj)
	xijj := indexed("xi", b.jj)

	// tr = wr*xr[jj] - wi*xi[jj]. The second summand's effective coefficient
	// is -wi, not wi: it is classified on -wi (not wi) so that a twiddle
	// wi classified PlusOne correctly prints as a MinusOne-class term here,
	// matching the sign the subtraction actually contributes.
	trExpr := renderSum(n.NumberFormat,
		newSummand(b.wr, b.wr, xrjj, true, n.th),
		newSummand(-b.wi, -b.wi, xijj, nzi.get(b.jj), n.th),
	)
	trZero := trExpr == ""

	if !trZero {
		w.line("tr = %s;", trExpr)
	}

	computeTi := !(n.RealOut && b.lastStage)

	var tiZero bool

	if computeTi {
		// ti = wr*xi[jj] + wi*xr[jj]
		tiExpr := renderSum(n.NumberFormat,
			newSummand(b.wr, b.wr, xijj, nzi.get(b.jj), n.th),
			newSummand(b.wi, b.wi, xrjj, true, n.th),
		)
		tiZero = tiExpr == ""

		if !tiZero {
			w.line("ti = %s;", tiExpr)
		}
	}

	emitStores(w, n, b, nzi, trZero, tiZero, computeTi)
}

func emitStores(w *writer, n normalized, b butterflyArgs, nzi *nziTracker, trZero, tiZero, computeTi bool) {
	if !(n.SymmOut && b.lastStage && b.jj != n.half) {
		if !trZero {
			w.line("xr[%d] = xr[%d] - tr;", b.jj, b.ii)
		} else {
			w.line("xr[%d] = xr[%d];", b.jj, b.ii)
		}

		if computeTi {
			emitImagJJ(w, n, b, nzi, tiZero)
		}
	}

	if !trZero {
		w.line("xr[%d] += tr;", b.ii)
	}

	if computeTi {
		emitImagII(w, n, b, nzi, tiZero)
	}
}

func emitImagJJ(w *writer, n normalized, b butterflyArgs, nzi *nziTracker, tiZero bool) {
	switch {
	case !tiZero && nzi.get(b.ii):
		w.line("xi[%d] = xi[%d] - ti;", b.jj, b.ii)
		nzi.set(b.jj, true)
	case !tiZero && !nzi.get(b.ii):
		w.line("xi[%d] = - ti;", b.jj)
		nzi.set(b.jj, true)
	case tiZero && nzi.get(b.ii):
		w.line("xi[%d] = xi[%d];", b.jj, b.ii)
		nzi.set(b.jj, true)
	case tiZero && !nzi.get(b.ii) && n.RealIn && b.lastStage:
		w.line("xi[%d] = 0.0;", b.jj)
	}
}

func emitImagII(w *writer, n normalized, b butterflyArgs, nzi *nziTracker, tiZero bool) {
	switch {
	case !tiZero && nzi.get(b.ii):
		w.line("xi[%d] += ti;", b.ii)
	case !tiZero && !nzi.get(b.ii):
		w.line("xi[%d] = ti;", b.ii)
		nzi.set(b.ii, true)
	case tiZero && !nzi.get(b.ii) && n.RealIn && b.lastStage:
		w.line("xi[%d] = 0.0;", b.ii)
	}
}

func indexed(name string, idx int) string {
	return fmt.Sprintf("%s[%d]", name, idx)
}

// nziTracker mirrors the source's nzi[] array: nzi[i] is true iff the
// generator has emitted code leaving xi[i] possibly non-zero.
type nziTracker struct {
	flags []bool
}

func newNziTracker(n int, realIn bool) *nziTracker {
	flags := make([]bool, n)
	if !realIn {
		for i := range flags {
			flags[i] = true
		}
	}

	return &nziTracker{flags: flags}
}

func (t *nziTracker) get(i int) bool { return t.flags[i] }

func (t *nziTracker) set(i int, v bool) { t.flags[i] = v }
