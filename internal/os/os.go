// Package os provides operating system specific probes for device
// information collection: machine identifier resolution, the ping latency
// probe, and link speed lookup, dispatched on the detected OS family.
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// DetectOS returns the current operating system family tag.
func DetectOS() string {
	return runtime.GOOS
}

// Platform defines the OS-specific probes used by the collectors. Every
// method is best-effort: the boolean result reports whether a value was
// obtained, failures never surface as errors.
type Platform interface {
	SystemPrimitives

	// Family returns the lowercase OS family tag (windows, linux, darwin, ...).
	Family() string

	// MachineID resolves the persistent machine identifier for this family.
	MachineID() (string, bool)

	// PingRTT runs one ping against host and returns the round-trip time in
	// milliseconds.
	PingRTT(host string) (float64, bool)

	// LinkSpeedMbps returns the rated link speed of the named interface.
	LinkSpeedMbps(iface string) (int64, bool)

	// PrettyOSVersion returns a human-readable OS product version where the
	// family exposes one beyond the kernel version string.
	PrettyOSVersion() (string, bool)
}

// Default provides the no-op fallthrough implementations used by unknown OS
// families. The known families embed it and override what they support.
type Default struct {
	SystemPrimitives
	family string
}

// NewDefault creates a Default for the given family tag.
func NewDefault(family string) *Default {
	return &Default{
		SystemPrimitives: hostPrimitives{},
		family:           family,
	}
}

// Family returns the OS family tag this platform was built for.
func (d *Default) Family() string {
	if d.family != "" {
		return d.family
	}
	return "unknown"
}

// MachineID is a no-op for unknown families.
func (d *Default) MachineID() (string, bool) {
	return "", false
}

// PingRTT runs the Unix-style ping invocation. Windows overrides this with
// its own argument form and output encoding.
func (d *Default) PingRTT(host string) (float64, bool) {
	out, err := d.ExecCommand("ping", "-c", "1", "-W", "2", host).Output()
	if err != nil {
		return 0, false
	}
	return parsePingRTT(string(out))
}

// LinkSpeedMbps is a no-op by default; only Linux exposes a rated speed.
func (d *Default) LinkSpeedMbps(_ string) (int64, bool) {
	return 0, false
}

// PrettyOSVersion is a no-op by default; Darwin overrides it.
func (d *Default) PrettyOSVersion() (string, bool) {
	return "", false
}

// pingRTTPattern matches the round-trip time token of ping output, covering
// both the English "time=" form and the zh-CN localized Windows form.
var pingRTTPattern = regexp.MustCompile(`(?:时间|time)[=<](\d+)(?:ms)?`)

func parsePingRTT(out string) (float64, bool) {
	match := pingRTTPattern.FindStringSubmatch(out)
	if match == nil {
		return 0, false
	}
	ms, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}

func newPlatformForOS(family string, def *Default) Platform {
	def.family = strings.ToLower(family)
	switch def.family {
	case "linux":
		return &Linux{Default: def}
	case "darwin":
		return &Darwin{Default: def}
	case "windows":
		return &Windows{Default: def}
	default:
		return def
	}
}

// New returns the Platform implementation for the runtime OS.
func New() Platform {
	return newPlatformForOS(DetectOS(), NewDefault(DetectOS()))
}
