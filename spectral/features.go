// SPDX-License-Identifier: MIT

package spectral

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes SIMD capabilities of the host CPU. The transforms in
// this package are portable Go; the report is informational.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the CPU features visible to the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
