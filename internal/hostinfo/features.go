// Package hostinfo probes the capabilities of the machine running the
// generator, for verbose diagnostics only. Nothing in the generator's
// output depends on it: the emitted fragment targets a caller-supplied
// floating-point type, not this process's CPU.
package hostinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features summarizes the SIMD tiers available on the host.
type Features struct {
	Architecture string
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}

// Tier returns a short human-readable label for the best SIMD tier detected.
// It is informational only; the generator's output never changes based on it.
func (f Features) Tier() string {
	switch {
	case f.HasAVX512:
		return "avx512"
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.HasNEON:
		return "neon"
	default:
		return "generic"
	}
}

func (f Features) String() string {
	return fmt.Sprintf("%s/%s", f.Architecture, f.Tier())
}
