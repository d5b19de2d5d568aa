// internal/cmdutil/threads.go
package cmdutil

import (
	"runtime"

	"github.com/klauspost/cpuid"
)

// Threads resolves a --threads value. Positive values are used as given;
// 0 means one worker per physical core, never more than runtime.NumCPU().
func Threads(requested int) int {
	if requested > 0 {
		return requested
	}
	ncpu := runtime.NumCPU()
	n := ncpu
	if tpc := cpuid.CPU.ThreadsPerCore; tpc > 1 {
		n = ncpu / tpc
	}
	if n < 1 {
		n = 1
	}
	if n > ncpu {
		n = ncpu
	}
	return n
}
