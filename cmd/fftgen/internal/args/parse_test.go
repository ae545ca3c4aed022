package args

import (
	"errors"
	"testing"
)

func TestParseConcatenatedShortFlags(t *testing.T) {
	t.Parallel()

	res, err := Parse([]string{"-rsn1024"})
	if err != nil {
		t.Fatal(err)
	}

	if !res.Config.RealIn || !res.Config.SymmOut {
		t.Fatalf("flags not applied: %+v", res.Config)
	}

	if res.Config.N != 1024 {
		t.Fatalf("N = %d, want 1024", res.Config.N)
	}
}

func TestParseNValueForms(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"-n1024"},
		{"-n=1024"},
		{"-n", "1024"},
		{"--points", "1024"},
		{"--points=1024"},
	}

	for _, argv := range cases {
		res, err := Parse(argv)
		if err != nil {
			t.Fatalf("Parse(%v): %v", argv, err)
		}

		if res.Config.N != 1024 {
			t.Fatalf("Parse(%v): N = %d, want 1024", argv, res.Config.N)
		}
	}
}

func TestParseLongOptions(t *testing.T) {
	t.Parallel()

	res, err := Parse([]string{"--points", "64", "--inverse", "--license", "--verbose", "--verbose"})
	if err != nil {
		t.Fatal(err)
	}

	if !res.Config.Inverse || !res.Config.License {
		t.Fatalf("long options not applied: %+v", res.Config)
	}

	if res.Verbose != 2 {
		t.Fatalf("Verbose = %d, want 2 (repeatable)", res.Verbose)
	}
}

func TestParseVersionAndHelp(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{{"-V"}, {"--version"}} {
		res, err := Parse(argv)
		if err != nil || res.Action != ActionVersion {
			t.Fatalf("Parse(%v) = %+v, %v; want ActionVersion", argv, res, err)
		}
	}

	for _, argv := range [][]string{{"-h"}, {"--help"}, {"-?"}} {
		res, err := Parse(argv)
		if err != nil || res.Action != ActionHelp {
			t.Fatalf("Parse(%v) = %+v, %v; want ActionHelp", argv, res, err)
		}
	}
}

func TestParseUnknownOption(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"-n1024", "-z"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("err = %v, want ErrUnknownOption", err)
	}
}

func TestParseMissingPoints(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"-i"})
	if !errors.Is(err, ErrMissingPoints) {
		t.Fatalf("err = %v, want ErrMissingPoints", err)
	}
}

func TestParseMissingValueForN(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"-n"})
	if !errors.Is(err, ErrInvalidOptionValue) {
		t.Fatalf("err = %v, want ErrInvalidOptionValue", err)
	}
}
