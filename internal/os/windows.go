// Package os provides operating system specific probes for device
// information collection.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Windows implements Platform for Windows systems
type Windows struct {
	*Default
}

// MachineID reads the MachineGuid value from the cryptography registry key.
func (w *Windows) MachineID() (string, bool) {
	guid, err := readMachineGUID()
	if err != nil {
		return "", false
	}
	guid = strings.TrimSpace(guid)
	if guid == "" {
		return "", false
	}
	return guid, true
}

// PingRTT runs one ping with the Windows argument form. Console output on
// zh-CN systems is GBK encoded, so decode before matching the time token.
func (w *Windows) PingRTT(host string) (float64, bool) {
	out, err := w.ExecCommand("ping", "-n", "1", host).Output()
	if err != nil {
		return 0, false
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(out)
	if err != nil {
		decoded = out
	}
	return parsePingRTT(string(decoded))
}
