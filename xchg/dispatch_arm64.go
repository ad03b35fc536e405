//go:build arm64

package xchg

import "golang.org/x/sys/cpu"

func init() {
	// Check for QSORT_NO_FAST environment variable first
	if NoFastEnv() {
		setPortableMode()
		return
	}

	// ARM64 (AArch64) always has ASIMD and permits unaligned LDR/STR for
	// normal memory. We still consult the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchWord
		currentName = "arm64/asimd"
	} else {
		// Fallback to portable (should never happen on ARMv8+)
		setPortableMode()
	}
}
