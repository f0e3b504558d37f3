// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"os"
	"os/exec"
)

// SystemPrimitives defines the low-level OS operations the probes depend on,
// so tests can substitute canned files and command output.
type SystemPrimitives interface {
	// OSReadFile reads a file from the host filesystem.
	OSReadFile(path string) ([]byte, error)

	// ExecCommand prepares a subprocess invocation.
	ExecCommand(name string, args ...string) *exec.Cmd
}

type hostPrimitives struct{}

// OSReadFile wraps os.ReadFile
//
//nolint:gosec // G304: Paths are fixed probe locations, not user input
func (hostPrimitives) OSReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ExecCommand wraps exec.Command
func (hostPrimitives) ExecCommand(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}
