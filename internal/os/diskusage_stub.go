//go:build !unix && !windows

// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

// FallbackDiskUsage is unavailable on this platform.
func FallbackDiskUsage(_ string) (total, used, free uint64, ok bool) {
	return 0, 0, 0, false
}
