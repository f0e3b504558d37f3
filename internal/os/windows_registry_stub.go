//go:build !windows

// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "errors"

func readMachineGUID() (string, error) {
	return "", errors.New("registry access is only available on windows")
}
