package codegen

import (
	"bytes"
	"strings"
	"testing"
)

// TestMonotoneEmissionNoLiteralForUnitCoefficients checks that a PlusOne or
// MinusOne classified term never carries a floating-point literal.
func TestMonotoneEmissionNoLiteralForUnitCoefficients(t *testing.T) {
	t.Parallel()

	th := thresholds{eps: 1e-12, epsOne: 1 - 1e-12, epsMOne: -(1 - 1e-12)}

	plus := newSummand(1.0, 1.0, "xr[3]", true, th)
	minus := newSummand(-1.0, -1.0, "xi[3]", true, th)

	// A coefficient literal is always immediately followed by "*varName";
	// its absence is what "no floating-point literal" means here, since the
	// array index itself is also made of digits.
	for _, s := range []summand{plus, minus} {
		got := leadingTerm(DefaultNumberFormat, s)
		if strings.Contains(got, "*") {
			t.Fatalf("leadingTerm(%+v) = %q, contains a numeric literal", s, got)
		}
	}

	gotConnective := connectiveTerm(DefaultNumberFormat, minus)
	if strings.Contains(gotConnective, "*") {
		t.Fatalf("connectiveTerm(%+v) = %q, contains a numeric literal", minus, gotConnective)
	}
}

// TestEmitButterflySymmOutSkipsHighCellOnLastStage checks the concrete
// scenario: under symmOut, a last-stage butterfly whose jj isn't n/2 never
// writes xr[jj]/xi[jj].
func TestEmitButterflySymmOutSkipsHighCellOnLastStage(t *testing.T) {
	t.Parallel()

	n, err := normalize(Config{N: 64, SymmOut: true})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	w := &writer{out: &buf}
	nzi := newNziTracker(n.N, false)

	emitButterfly(w, n, butterflyArgs{ii: 3, jj: 35, wr: 0.7, wi: 0.3, lastStage: true}, nzi)

	// tr/ti still read xr[35]/xi[35]; only statements assigning to cell 35
	// are suppressed.
	out := buf.String()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "xr[35]") || strings.HasPrefix(line, "xi[35]") {
			t.Fatalf("emitted a write to suppressed cell 35:\n%s", out)
		}
	}
}

// TestEmitButterflySymmOutKeepsHalfCellOnLastStage checks the exempted case:
// jj == n/2 is always written even under symmOut, since index n/2 is the
// Nyquist bin the caller still reads.
func TestEmitButterflySymmOutKeepsHalfCellOnLastStage(t *testing.T) {
	t.Parallel()

	n, err := normalize(Config{N: 64, SymmOut: true})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	w := &writer{out: &buf}
	nzi := newNziTracker(n.N, false)

	emitButterfly(w, n, butterflyArgs{ii: 0, jj: 32, wr: 1.0, wi: 0.0, lastStage: true}, nzi)

	out := buf.String()
	if !strings.Contains(out, "xr[32] = ") {
		t.Fatalf("expected a write to the exempted cell 32:\n%s", out)
	}
}
