//go:build !unix

package main

import "time"

// cpuTime is not implemented on this platform; only wall time is reported.
func cpuTime() (time.Duration, bool) {
	return 0, false
}
