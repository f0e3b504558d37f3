//go:build windows

// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "golang.org/x/sys/windows"

// FallbackDiskUsage reports total/used/free bytes for the volume at path
// straight from the Win32 API, used when the richer usage query fails.
func FallbackDiskUsage(path string) (total, used, free uint64, ok bool) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, 0, false
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathp, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, 0, 0, false
	}
	return totalBytes, totalBytes - totalFreeBytes, totalFreeBytes, true
}
