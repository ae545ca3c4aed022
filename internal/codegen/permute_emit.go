package codegen

// emitPermutation writes the permutation block: the pre-swap symmetry
// assignments (if any), then each swap in order, then a single blank line.
func emitPermutation(w *writer, n, half int, realIn bool, perm Permutation) {
	for _, i := range perm.PreAssigns {
		w.line("xr[%d] =  xr[%d];", i, n-i)
		w.line("xi[%d] = -xi[%d];", i, n-i)
	}

	for _, s := range perm.Swaps {
		emitSwap(w, s, half, realIn)
	}

	w.blank()
}

func emitSwap(w *writer, s SwapOp, half int, realIn bool) {
	if !s.UseSymm {
		emitOrdinarySwap(w, s, realIn)
		return
	}

	emitSymmetricSwap(w, s, half, realIn)
}

func emitOrdinarySwap(w *writer, s SwapOp, realIn bool) {
	w.line("tr = xr[%d];", s.M)
	w.line("xr[%d] = xr[%d];", s.M, s.Mr)
	w.line("xr[%d] = tr;", s.Mr)

	if realIn {
		return
	}

	w.line("ti = xi[%d];", s.M)
	w.line("xi[%d] = xi[%d];", s.M, s.Mr)
	w.line("xi[%d] = ti;", s.Mr)
}

func emitSymmetricSwap(w *writer, s SwapOp, half int, realIn bool) {
	w.line("xr[%d] = xr[%d];", s.Mr, s.MNew)
	w.line("xr[%d] = xr[%d];", s.M, s.MrNew)

	if realIn {
		return
	}

	if s.M <= half {
		w.line("xi[%d] = xi[%d];", s.Mr, s.MNew)
	} else {
		w.line("xi[%d] = -xi[%d];", s.Mr, s.MNew)
	}

	if s.Mr <= half {
		w.line("xi[%d] = xi[%d];", s.M, s.MrNew)
	} else {
		w.line("xi[%d] = -xi[%d];", s.M, s.MrNew)
	}
}
