package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/atlas-infra/devinfo/internal/models"
)

// collectMemory reports physical and swap memory statistics. Buffer, cache
// and shared sizes only exist on the Linux family and stay nil elsewhere
// rather than reporting a misleading zero.
func (c *Collector) collectMemory(ctx context.Context) (*models.MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	info := &models.MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Percent:     clampPercent(vm.UsedPercent),
		Used:        vm.Used,
		Free:        vm.Free,
		SwapTotal:   swap.Total,
		SwapUsed:    swap.Used,
		SwapFree:    swap.Free,
		SwapPercent: clampPercent(swap.UsedPercent),
	}

	if c.plat.Family() == "linux" {
		buffers, cached, shared := vm.Buffers, vm.Cached, vm.Shared
		info.Buffers = &buffers
		info.Cached = &cached
		info.Shared = &shared
	}

	return info, nil
}
