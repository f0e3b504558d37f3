// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"regexp"
	"strings"

	"howett.net/plist"
)

// machineUUIDPattern extracts the IOPlatformUUID value from ioreg output.
var machineUUIDPattern = regexp.MustCompile(`"IOPlatformUUID"\s*=\s*"([^"]+)"`)

const systemVersionPlistPath = "/System/Library/CoreServices/SystemVersion.plist"

// Darwin implements Platform for macOS/Darwin systems
type Darwin struct {
	*Default
}

// MachineID extracts the IOPlatformUUID from the IOKit registry.
func (d *Darwin) MachineID() (string, bool) {
	out, err := d.ExecCommand("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return "", false
	}
	return parseIOPlatformUUID(string(out))
}

func parseIOPlatformUUID(out string) (string, bool) {
	match := machineUUIDPattern.FindStringSubmatch(out)
	if match == nil {
		return "", false
	}
	return match[1], true
}

type systemVersionPlist struct {
	ProductName    string `plist:"ProductName"`
	ProductVersion string `plist:"ProductVersion"`
}

// PrettyOSVersion reads the macOS product name and version from
// SystemVersion.plist, which is friendlier than the Darwin kernel version.
func (d *Darwin) PrettyOSVersion() (string, bool) {
	data, err := d.OSReadFile(systemVersionPlistPath)
	if err != nil {
		return "", false
	}

	var parsed systemVersionPlist
	if _, err := plist.Unmarshal(data, &parsed); err != nil {
		return "", false
	}

	version := strings.TrimSpace(strings.Join([]string{parsed.ProductName, parsed.ProductVersion}, " "))
	if version == "" {
		return "", false
	}
	return version, true
}
