package args

import (
	"fmt"
	"io"
)

// Version is printed by -V/--version.
const Version = "fftgen V1"

// PrintUsage writes the option summary to w, matching the original tool's
// info() function, called from both the success path (-h/--help) and every
// parse-error path.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

const usageText = `fftgen: Generate code to compute an FFT or IFFT
Version: ` + Version + `

Usage: fftgen -n <points> [options]

  -n, --points <n>       number of points (required, must be a power of two)
  -i, --inverse          generate code for the inverse transform
  -r, --real-in-opt      optimize assuming the input's imaginary part is zero
  -o, --real-out-opt     optimize assuming the output's imaginary part is unused
  -m, --symm-in-opt      optimize assuming Hermitian symmetry of the input
  -s, --symm-out-opt     optimize assuming only the first half of the output is read
  -l, --license          prepend a GPL 3 license notice to the generated code
  -v, --verbose          increase verbosity (repeatable)
  -V, --version          print the version and exit
  -h, --help             print this message and exit

Short options may be concatenated (-rsn1024) and -n accepts its value
attached (-n1024), with an equals sign (-n=1024), or as the next argument
(-n 1024).
`
