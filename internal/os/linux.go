// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	linuxMachineIDPath     = "/etc/machine-id"
	linuxDbusMachineIDPath = "/var/lib/dbus/machine-id"
)

// Linux implements Platform for Linux systems
type Linux struct {
	*Default
}

// MachineID reads the systemd machine id, falling back to the D-Bus copy.
func (l *Linux) MachineID() (string, bool) {
	for _, path := range []string{linuxMachineIDPath, linuxDbusMachineIDPath} {
		data, err := l.OSReadFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, true
		}
	}
	return "", false
}

// LinkSpeedMbps reads the rated interface speed from sysfs. The kernel
// reports -1 for interfaces without a negotiated link.
func (l *Linux) LinkSpeedMbps(iface string) (int64, bool) {
	data, err := l.OSReadFile(fmt.Sprintf("/sys/class/net/%s/speed", iface))
	if err != nil {
		return 0, false
	}
	speed, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || speed <= 0 {
		return 0, false
	}
	return speed, true
}
