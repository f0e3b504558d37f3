package collector

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/atlas-infra/devinfo/internal/models"
)

// Per-CPU cpufreq sysfs locations (kHz values), read best-effort on Linux.
const (
	cpufreqCurrentPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"
	cpufreqMinPath     = "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_min_freq"
	cpufreqMaxPath     = "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"
)

// collectCPU reports static CPU identity and one instantaneous usage sample.
// The usage sample blocks for the configured interval (~100ms).
func (c *Collector) collectCPU(ctx context.Context) (*models.CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain CPU information: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("failed to obtain CPU information: %w", errors.New("no cpu entries reported"))
	}
	ident := infos[0]

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain CPU information: %w", err)
	}
	if logical <= 0 {
		logical = runtime.NumCPU()
	}

	// Prefer the OS-reported physical count, then the identification entry's
	// own core count, then the logical count.
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil || physical <= 0 {
		physical = int(ident.Cores)
	}
	if physical <= 0 {
		physical = logical
	}

	usage, err := cpu.PercentWithContext(ctx, c.cfg.UsageSampleInterval, false)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain CPU information: %w", err)
	}

	info := &models.CPUInfo{
		BrandRaw:      ident.ModelName,
		VendorIDRaw:   ident.VendorID,
		Arch:          runtime.GOARCH,
		Bits:          strconv.IntSize,
		PhysicalCores: physical,
		LogicalCores:  logical,
		Flags:         ident.Flags,
	}
	if len(usage) > 0 {
		info.CPUUsage = clampPercent(usage[0])
	}

	// Advertised frequency from CPU identification; gopsutil reports it in
	// MHz already.
	if ident.Mhz > 0 {
		base := ident.Mhz
		info.BaseFreq = &base
	}

	info.CurrentFreq, info.MinFreq, info.MaxFreq = c.cpufreqRange()
	if info.CurrentFreq == nil && ident.Mhz > 0 {
		current := ident.Mhz
		info.CurrentFreq = &current
	}

	if ident.CacheSize > 0 {
		l2 := int64(ident.CacheSize) * 1024
		info.L2CacheSize = &l2
	}
	info.Family = parseNonNegative(ident.Family)
	info.Model = parseNonNegative(ident.Model)
	if ident.Stepping >= 0 {
		stepping := int(ident.Stepping)
		info.Stepping = &stepping
	}

	return info, nil
}

// cpufreqRange reads current/min/max clock frequency from sysfs, converting
// kHz to MHz. All three are nullable: absence is a valid result.
func (c *Collector) cpufreqRange() (current, minFreq, maxFreq *float64) {
	return c.readCpufreq(cpufreqCurrentPath), c.readCpufreq(cpufreqMinPath), c.readCpufreq(cpufreqMaxPath)
}

func (c *Collector) readCpufreq(path string) *float64 {
	data, err := c.plat.OSReadFile(path)
	if err != nil {
		return nil
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || khz < 0 {
		return nil
	}
	mhz := khz / 1000
	return &mhz
}

func parseNonNegative(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
