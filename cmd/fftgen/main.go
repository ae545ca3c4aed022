// Command fftgen generates a flat, loop-unrolled, constant-folded radix-2
// FFT/IFFT code fragment and writes it to stdout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/fftgen"
	"github.com/cwbudde/fftgen/cmd/fftgen/internal/args"
	"github.com/cwbudde/fftgen/internal/hostinfo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	res, err := args.Parse(argv)
	if err != nil {
		fmt.Fprintf(stderr, "\nfftgen: %v\n\n", err)
		args.PrintUsage(stderr)

		return 1
	}

	switch res.Action {
	case args.ActionVersion:
		fmt.Fprintln(stdout, args.Version)
		return 0
	case args.ActionHelp:
		args.PrintUsage(stdout)
		return 0
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	logConfig(logger, res.Config, res.Verbose)

	stats, err := generate(stdout, res.Config)
	if err != nil {
		fmt.Fprintf(stderr, "\nfftgen: %v\n\n", err)
		return 1
	}

	if res.Verbose >= 2 {
		logger.Info("generation complete",
			"swaps", stats.Swaps,
			"preAssigns", stats.PreAssigns,
			"stages", stats.Stages,
			"butterflies", stats.Butterflies,
			"host", hostinfo.Detect().String(),
		)
	}

	return 0
}

// generate wraps fftgen.Generate with a panic recovery boundary: Go has no
// malloc-style allocation failure return, so an out-of-memory condition
// surfaces as a runtime panic instead. That panic is recovered here and
// reported as fftgen.ErrAllocation, matching the original tool's fatal
// "Error allocating memory" exit path without inventing a synthetic
// allocation-failure injection point.
func generate(w io.Writer, cfg fftgen.Config) (stats fftgen.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", fftgen.ErrAllocation, r)
		}
	}()

	return fftgen.Generate(w, cfg)
}

func logConfig(logger *slog.Logger, cfg fftgen.Config, verbose int) {
	if verbose < 1 {
		return
	}

	direction := "forward"
	if cfg.Inverse {
		direction = "inverse"
	}

	logger.Info("fftgen configuration",
		"points", cfg.N,
		"direction", direction,
		"realIn", cfg.RealIn,
		"realOut", cfg.RealOut,
		"symmIn", cfg.SymmIn,
		"symmOut", cfg.SymmOut,
		"license", cfg.License,
	)
}
