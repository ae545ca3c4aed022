package fftgen

import (
	"io"

	"github.com/cwbudde/fftgen/internal/codegen"
)

// Stats reports counters gathered while generating a fragment, useful for
// verbose diagnostics.
type Stats struct {
	Swaps       int
	PreAssigns  int
	Stages      int
	Butterflies int
}

// Generate writes the FFT/IFFT fragment described by cfg to w.
//
// Generate is a pure function of cfg: it performs no I/O beyond writing to
// w, and is safe to call concurrently with different Config values.
func Generate(w io.Writer, cfg Config) (Stats, error) {
	stats, err := codegen.Generate(w, codegen.Config{
		N:            cfg.N,
		Inverse:      cfg.Inverse,
		RealIn:       cfg.RealIn,
		RealOut:      cfg.RealOut,
		SymmIn:       cfg.SymmIn,
		SymmOut:      cfg.SymmOut,
		License:      cfg.License,
		NumberFormat: cfg.NumberFormat,
		Indent:       cfg.Indent,
		Header:       cfg.Header,
		Footer:       cfg.Footer,
	})
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Swaps:       stats.Swaps,
		PreAssigns:  stats.PreAssigns,
		Stages:      stats.Stages,
		Butterflies: stats.Butterflies,
	}, nil
}
