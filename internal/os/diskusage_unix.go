//go:build unix

// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "golang.org/x/sys/unix"

// FallbackDiskUsage reports total/used/free bytes for the filesystem at path
// straight from statfs, used when the richer usage query fails.
func FallbackDiskUsage(path string) (total, used, free uint64, ok bool) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, 0, false
	}
	bsize := uint64(stat.Bsize)
	total = stat.Blocks * bsize
	free = stat.Bavail * bsize
	used = total - free
	return total, used, free, true
}
