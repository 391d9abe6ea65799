//go:build !linux

package parallel

import "runtime"

// DefaultParallelism returns the number of logical CPUs.
func DefaultParallelism() int {
	return runtime.NumCPU()
}
