package collector

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/atlas-infra/devinfo/internal/models"
	osinfo "github.com/atlas-infra/devinfo/internal/os"
	"github.com/atlas-infra/devinfo/internal/utils"
)

// collectDisk enumerates mounted partitions and aggregates their usage.
// Only a failure of the enumeration itself fails the category: partitions
// whose usage cannot be determined are skipped silently, and I/O counter
// failures leave the stats nil.
func (c *Collector) collectDisk(ctx context.Context) (*models.DiskInfo, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk info: %w", err)
	}

	accessible := make([]models.DiskPartitionInfo, 0, len(partitions))
	for _, p := range partitions {
		total, used, free, ok := c.partitionUsage(ctx, p.Mountpoint)
		if !ok {
			utils.LogDebug("skipping inaccessible partition", map[string]string{
				"device":     p.Device,
				"mountpoint": p.Mountpoint,
			})
			continue
		}
		accessible = append(accessible, models.DiskPartitionInfo{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Total:      total,
			Used:       used,
			Free:       free,
			Percent:    partitionPercent(used, total),
		})
	}

	info := buildDiskInfo(accessible)
	info.IOStats = c.diskIOStats(ctx)
	return info, nil
}

// partitionUsage tries the rich usage query first and falls back to a plain
// statfs-level query when that fails.
func (c *Collector) partitionUsage(ctx context.Context, mountpoint string) (total, used, free uint64, ok bool) {
	usage, err := disk.UsageWithContext(ctx, mountpoint)
	if err == nil {
		return usage.Total, usage.Used, usage.Free, true
	}
	return osinfo.FallbackDiskUsage(mountpoint)
}

// buildDiskInfo aggregates the accessible partitions: byte sums plus the
// arithmetic mean of the individual usage percentages. The mean is nil when
// no partition was accessible.
func buildDiskInfo(partitions []models.DiskPartitionInfo) *models.DiskInfo {
	info := &models.DiskInfo{
		Partitions: partitions,
	}

	var percentSum float64
	for _, p := range partitions {
		info.TotalDiskSpace += p.Total
		info.TotalUsedSpace += p.Used
		info.TotalFreeSpace += p.Free
		percentSum += p.Percent
	}

	if len(partitions) > 0 {
		avg := round2(percentSum / float64(len(partitions)))
		info.AverageUsagePercent = &avg
	}

	return info
}

// partitionPercent computes round(used/total*100, 2). A zero-total partition
// reports 0.0 rather than an error.
func partitionPercent(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return round2(float64(used) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// diskIOStats reads system-wide I/O counters summed across devices. Merged
// operation counts and busy time are Linux-only fields and stay nil on other
// families. Any failure here degrades to nil, never an error.
func (c *Collector) diskIOStats(ctx context.Context) *models.DiskIOInfo {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil || len(counters) == 0 {
		utils.LogDebug("disk io counters unavailable", nil)
		return nil
	}

	io := &models.DiskIOInfo{}
	var mergedRead, mergedWrite, busy uint64
	for _, cs := range counters {
		io.ReadCount += cs.ReadCount
		io.WriteCount += cs.WriteCount
		io.ReadBytes += cs.ReadBytes
		io.WriteBytes += cs.WriteBytes
		io.ReadTime += cs.ReadTime
		io.WriteTime += cs.WriteTime
		mergedRead += cs.MergedReadCount
		mergedWrite += cs.MergedWriteCount
		busy += cs.IoTime
	}

	if c.plat.Family() == "linux" {
		io.ReadMergedCount = &mergedRead
		io.WriteMergedCount = &mergedWrite
		io.BusyTime = &busy
	}

	return io
}
