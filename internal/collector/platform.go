package collector

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/atlas-infra/devinfo/internal/models"
	"github.com/atlas-infra/devinfo/internal/utils"
)

// collectPlatform reports OS identity and the best-effort persistent machine
// identifier. Machine-ID resolution failures never fail the category; every
// other failure does.
func (c *Collector) collectPlatform(ctx context.Context) (*models.PlatformInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get platform info: %w", err)
	}

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform info: %w", err)
	}

	osName := strings.ToLower(hostInfo.OS)
	osVersion := hostInfo.PlatformVersion
	if pretty, ok := c.plat.PrettyOSVersion(); ok {
		osVersion = pretty
	}

	info := &models.PlatformInfo{
		Hostname:       hostname,
		OSName:         osName,
		OSVersion:      osVersion,
		RuntimeVersion: runtime.Version(),
		Platform:       platformDescriptor(hostInfo.Platform, osVersion, hostInfo.KernelArch),
		Architecture:   hostInfo.KernelArch,
		Processor:      processorString(ctx),
		BootTime:       int64(hostInfo.BootTime),
		Uptime:         uptimeSeconds(hostInfo.BootTime, time.Now()),
	}

	if id, ok := c.plat.MachineID(); ok {
		info.MachineID = &id
	} else {
		utils.LogDebug("machine id unavailable", map[string]string{"os": osName})
	}

	return info, nil
}

// platformDescriptor builds the combined platform string, e.g.
// "ubuntu-24.04-x86_64".
func platformDescriptor(platform, version, arch string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{platform, version, arch} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// processorString reports the processor model name, best-effort: an empty
// string is a valid result.
func processorString(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return ""
	}
	return infos[0].ModelName
}

func uptimeSeconds(bootTime uint64, now time.Time) int64 {
	uptime := now.Unix() - int64(bootTime)
	if uptime < 0 {
		return 0
	}
	return uptime
}
