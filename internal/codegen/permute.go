package codegen

// SwapOp is one bit-reversal swap emitted by the permutation planner.
//
// When UseSymm is false the planner emits an ordinary exchange of cells M
// and Mr. When UseSymm is true the caller has promised Hermitian symmetry
// of the input about index n/2, and MNew/MrNew name the reflected source
// cells to read from instead of M/Mr.
type SwapOp struct {
	M, Mr   int
	MNew    int
	MrNew   int
	UseSymm bool
}

// Permutation is the full bit-reversal plan: the direct symmetry
// assignments that must run before any swap (only non-empty when SymmIn is
// set), followed by the ordered swap list.
type Permutation struct {
	PreAssigns []int // indices i with no swap entry; emit xr[i]=xr[n-i]; xi[i]=-xi[n-i]
	Swaps      []SwapOp
}

// planPermutation builds the bit-reversal swap list for an n-point
// transform, reordered for read-before-write when symmIn is set.
//
// The companion index mr is advanced with the standard decrement-carry
// scheme: repeatedly halve k starting at n while mr+k exceeds n-1, then set
// mr = mr mod k + k.
func planPermutation(n int, half int, symmIn bool) Permutation {
	nn := n - 1

	var swaps []SwapOp

	mr := 0
	for m := 1; m <= nn; m++ {
		k := n
		for {
			k /= 2
			if mr+k <= nn {
				break
			}
		}

		mr = mr%k + k

		if mr <= m {
			continue
		}

		if !symmIn || (m <= half && mr <= half) {
			swaps = append(swaps, SwapOp{M: m, Mr: mr})
			continue
		}

		mNew, mrNew := m, mr
		if m > half {
			mNew = n - m
		}

		if mr > half {
			mrNew = n - mr
		}

		op := SwapOp{M: m, Mr: mr, MNew: mNew, MrNew: mrNew, UseSymm: true}
		swaps = insertReordered(swaps, op, m > half, mr > half, mNew, mrNew)
	}

	var pre []int
	if symmIn {
		for i := half + 1; i < n; i++ {
			if !touchesIndex(swaps, i) {
				pre = append(pre, i)
			}
		}
	}

	return Permutation{PreAssigns: pre, Swaps: swaps}
}

// insertReordered places op into swaps such that neither mNew nor mrNew (the
// symmetry-reflected source cells op is about to read) has already been
// overwritten by an earlier swap in the list.
//
// It searches swaps backward from the end for the latest entry touching
// mNew (only if m was reflected) and mrNew (only if mr was reflected), takes
// the earlier of the two hits, and inserts op just before it. The backward
// scan deliberately stops before index 0 (a strict ">0" bound), matching the
// source algorithm: a dependency resolved only at swap index 0 is treated as
// unreachable and op is appended instead of inserted. See DESIGN.md for why
// this is preserved rather than "fixed".
func insertReordered(swaps []SwapOp, op SwapOp, mReflected, mrReflected bool, mNew, mrNew int) []SwapOp {
	var iM, iMr int

	if mReflected {
		iM = searchBackward(swaps, mNew)
	}

	if mrReflected {
		iMr = searchBackward(swaps, mrNew)
	}

	switch {
	case iMr > 0 && iM > 0:
		if iMr > iM {
			iMr = iM
		}
	case iM > 0:
		iMr = iM
	}

	if iMr > 0 {
		return insertAt(swaps, iMr, op)
	}

	return append(swaps, op)
}

// searchBackward scans swaps from its last entry down to (but not including)
// index 0, returning the first index whose M or Mr equals target, or 0 if
// none is found.
func searchBackward(swaps []SwapOp, target int) int {
	for i := len(swaps) - 1; i > 0; i-- {
		if swaps[i].M == target || swaps[i].Mr == target {
			return i
		}
	}

	return 0
}

// touchesIndex reports whether idx appears as M or Mr in any swap.
func touchesIndex(swaps []SwapOp, idx int) bool {
	for i := len(swaps) - 1; i >= 0; i-- {
		if swaps[i].M == idx || swaps[i].Mr == idx {
			return true
		}
	}

	return false
}

// insertAt inserts v at position i in s, shifting later entries down.
func insertAt(s []SwapOp, i int, v SwapOp) []SwapOp {
	s = append(s, SwapOp{})
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
