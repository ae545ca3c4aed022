// Package args hand-rolls the fftgen CLI's option grammar: concatenated
// short flags ("-rsn1024"), the three value-attachment forms for -n
// ("-n1024", "-n=1024", "-n 1024"), and the long-option aliases
// ("--points", "--inverse", ...). Neither the standard flag package nor a
// third-party flag library in the retrieved corpus supports concatenated
// short options or inline value attachment, so this is hand-rolled.
package args

import (
	"strconv"
	"strings"

	"github.com/cwbudde/fftgen"
)

// option describes one recognized flag.
type option struct {
	short    byte   // short option letter, 0 if none
	long     string // long option name, without leading "--"
	hasValue bool   // true if the option consumes a following value
	apply    func(cfg *fftgen.Config, verbose *int, value string)
}

var options = []option{
	{short: 'n', long: "points", hasValue: true, apply: func(cfg *fftgen.Config, _ *int, v string) {
		n, err := strconv.Atoi(v)
		if err == nil {
			cfg.N = n
		}
	}},
	{short: 'i', long: "inverse", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.Inverse = true }},
	{short: 'r', long: "real-in-opt", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.RealIn = true }},
	{short: 'o', long: "real-out-opt", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.RealOut = true }},
	{short: 'm', long: "symm-in-opt", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.SymmIn = true }},
	{short: 's', long: "symm-out-opt", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.SymmOut = true }},
	{short: 'l', long: "license", apply: func(cfg *fftgen.Config, _ *int, _ string) { cfg.License = true }},
	{short: 'v', long: "verbose", apply: func(_ *fftgen.Config, verbose *int, _ string) { *verbose++ }},
}

func findLong(name string) (option, bool) {
	for _, o := range options {
		if o.long == name {
			return o, true
		}
	}

	return option{}, false
}

func findShort(c byte) (option, bool) {
	for _, o := range options {
		if o.short == c {
			return o, true
		}
	}

	return option{}, false
}

// Action tells the driver what to do after Parse returns.
type Action int

const (
	// ActionGenerate is the normal path: proceed to fftgen.Generate.
	ActionGenerate Action = iota
	// ActionVersion means -V/--version was seen; print the version and exit 0.
	ActionVersion
	// ActionHelp means -h/--help was seen; print usage and exit 0.
	ActionHelp
)

// Result is everything Parse extracted from the command line.
type Result struct {
	Config  fftgen.Config
	Verbose int
	Action  Action
}

// Parse walks argv (excluding argv[0]) and builds a Result.
//
// Unknown options and malformed arguments are reported via err; the caller
// should print usage to stderr and exit non-zero in that case, mirroring the
// original tool's info(stderr) + exit(1) behavior.
func Parse(argv []string) (Result, error) {
	var res Result

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		if len(tok) < 2 || tok[0] != '-' {
			return res, errUnknownArgument(tok)
		}

		if tok[1] == '-' {
			name := tok[2:]
			if name == "version" {
				res.Action = ActionVersion
				return res, nil
			}

			if name == "help" {
				res.Action = ActionHelp
				return res, nil
			}

			value := ""
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				value, name = name[eq+1:], name[:eq]
			}

			opt, ok := findLong(name)
			if !ok {
				return res, errUnknownOption(tok)
			}

			if opt.hasValue && value == "" {
				if i+1 >= len(argv) {
					return res, ErrInvalidOptionValue
				}

				i++
				value = argv[i]
			}

			if opt.hasValue && !isDecimal(value) {
				return res, joinErr(ErrInvalidOptionValue, value)
			}

			opt.apply(&res.Config, &res.Verbose, value)
			continue
		}

		rest := tok[1:]
		if rest == "V" || rest == "version" {
			res.Action = ActionVersion
			return res, nil
		}

		if rest == "h" || rest == "help" || rest == "?" {
			res.Action = ActionHelp
			return res, nil
		}

		for len(rest) > 0 {
			opt, ok := findShort(rest[0])
			if !ok {
				return res, errUnknownOption(tok)
			}

			rest = rest[1:]

			if !opt.hasValue {
				opt.apply(&res.Config, &res.Verbose, "")
				continue
			}

			value := strings.TrimPrefix(rest, "=")
			if value == "" {
				if i+1 >= len(argv) {
					return res, ErrInvalidOptionValue
				}

				i++
				value = argv[i]
			}

			if !isDecimal(value) {
				return res, joinErr(ErrInvalidOptionValue, value)
			}

			opt.apply(&res.Config, &res.Verbose, value)
			rest = ""
		}
	}

	if res.Config.N == 0 {
		return res, ErrMissingPoints
	}

	return res, nil
}

// isDecimal reports whether v parses as a decimal integer, the only kind of
// value an option in the table takes.
func isDecimal(v string) bool {
	_, err := strconv.Atoi(v)
	return err == nil
}

func errUnknownOption(tok string) error {
	return joinErr(ErrUnknownOption, tok)
}

func errUnknownArgument(tok string) error {
	return joinErr(ErrUnknownOption, tok)
}

func joinErr(base error, tok string) error {
	return &tokenError{base: base, tok: tok}
}

type tokenError struct {
	base error
	tok  string
}

func (e *tokenError) Error() string { return e.base.Error() + ": " + e.tok }
func (e *tokenError) Unwrap() error { return e.base }
