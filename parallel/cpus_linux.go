//go:build linux

package parallel

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// DefaultParallelism returns the number of CPUs this process may run on,
// honouring the scheduler affinity mask (taskset, cgroup cpusets).
func DefaultParallelism() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil {
		if n := set.Count(); n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
