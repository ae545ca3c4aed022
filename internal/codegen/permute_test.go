package codegen

import (
	"fmt"
	"testing"

	"github.com/cwbudde/fftgen/internal/mathutil"
)

// replayPermutation executes a Permutation's pre-assigns and swaps against an
// identity-seeded array and returns the resulting index mapping, so it can be
// compared against the reference bit-reversal permutation.
func replayPermutation(n, half int, symmIn bool, perm Permutation) []int {
	cells := make([]int, n)
	for i := range cells {
		cells[i] = i
	}

	for _, i := range perm.PreAssigns {
		cells[i] = cells[n-i]
	}

	for _, s := range perm.Swaps {
		if !s.UseSymm {
			cells[s.M], cells[s.Mr] = cells[s.Mr], cells[s.M]
			continue
		}

		cells[s.Mr] = cells[s.MNew]
		cells[s.M] = cells[s.MrNew]
	}

	return cells
}

func TestPlanPermutationMatchesBitReversal(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 16, 32, 64, 128} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			perm := planPermutation(n, n/2, false)
			got := replayPermutation(n, n/2, false, perm)
			want := mathutil.BitReversalIndices(n)

			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("n=%d: cell %d: got %d, want %d", n, i, got[i], want[i])
				}
			}
		})
	}
}

// TestPlanPermutationSymmInNoReadAfterWrite checks that no swap, under
// symmIn, reads from a cell that an earlier swap in the block already wrote.
func TestPlanPermutationSymmInNoReadAfterWrite(t *testing.T) {
	t.Parallel()

	for _, n := range []int{8, 16, 32, 64} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			half := n / 2
			perm := planPermutation(n, half, true)

			written := map[int]bool{}
			for _, s := range perm.Swaps {
				if s.UseSymm {
					if written[s.MNew] {
						t.Fatalf("n=%d: swap (m=%d,mr=%d) reads overwritten cell %d", n, s.M, s.Mr, s.MNew)
					}

					if written[s.MrNew] {
						t.Fatalf("n=%d: swap (m=%d,mr=%d) reads overwritten cell %d", n, s.M, s.Mr, s.MrNew)
					}

					written[s.Mr] = true
					written[s.M] = true

					continue
				}

				written[s.M] = true
				written[s.Mr] = true
			}
		})
	}
}
