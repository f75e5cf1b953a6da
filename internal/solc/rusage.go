package solc

import "syscall"

// childUserTime returns the cumulative user-mode CPU time, in seconds, of all
// child processes this process has waited for. Differencing two readings
// around a subprocess call isolates that subprocess's own CPU usage, since
// the parent's time is accounted separately by the kernel.
func childUserTime() (float64, error) {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_CHILDREN, &usage); err != nil {
		return 0, err
	}
	return float64(usage.Utime.Sec) + float64(usage.Utime.Usec)/1e6, nil
}
