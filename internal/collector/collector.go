// Package collector gathers point-in-time diagnostic information about the
// host machine (platform identity, CPU, memory, disk, network) and merges it
// into a single validated snapshot.
package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atlas-infra/devinfo/internal/models"
	osinfo "github.com/atlas-infra/devinfo/internal/os"
)

// Default probe targets and sampling windows. These reproduce the reference
// collection behavior; Config can override each of them.
const (
	DefaultThroughputWindow    = 3 * time.Second
	DefaultUsageSampleInterval = 100 * time.Millisecond
	DefaultPublicIPTimeout     = 3 * time.Second
	DefaultPingTarget          = "baidu.com"
)

// DefaultPublicIPServices are the IP-echo endpoints tried in order during
// public IP discovery.
var DefaultPublicIPServices = []string{
	"https://api.ipify.org",
	"https://icanhazip.com",
}

// Config holds the collector tunables. Zero-value fields fall back to the
// defaults above, so Config{} behaves identically to DefaultConfig().
type Config struct {
	// ThroughputWindow is the blocking sampling window of the network
	// throughput measurement. The default of 3 seconds dominates the wall
	// time of a full collection.
	ThroughputWindow time.Duration

	// UsageSampleInterval is the blocking CPU usage sampling interval.
	UsageSampleInterval time.Duration

	// PublicIPTimeout bounds each individual IP-echo request.
	PublicIPTimeout time.Duration

	// PingTarget is the hostname probed for round-trip latency.
	PingTarget string

	// PublicIPServices overrides the IP-echo endpoint list.
	PublicIPServices []string
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		ThroughputWindow:    DefaultThroughputWindow,
		UsageSampleInterval: DefaultUsageSampleInterval,
		PublicIPTimeout:     DefaultPublicIPTimeout,
		PingTarget:          DefaultPingTarget,
		PublicIPServices:    DefaultPublicIPServices,
	}
}

// Collector orchestrates the five category sub-collectors. It holds no
// per-call mutable state, so a single instance is safe for concurrent use.
type Collector struct {
	cfg  Config
	plat osinfo.Platform

	// Sub-collectors are held as function fields so tests can substitute
	// them without touching the OS.
	platformFn func(ctx context.Context) (*models.PlatformInfo, error)
	cpuFn      func(ctx context.Context) (*models.CPUInfo, error)
	memoryFn   func(ctx context.Context) (*models.MemoryInfo, error)
	diskFn     func(ctx context.Context) (*models.DiskInfo, error)
	networkFn  func(ctx context.Context) (*models.NetworkInfo, error)
}

// New creates a collector with the reference configuration.
func New() *Collector {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a collector with the given tunables. Zero-value
// fields are replaced with defaults.
func NewWithConfig(cfg Config) *Collector {
	def := DefaultConfig()
	if cfg.ThroughputWindow <= 0 {
		cfg.ThroughputWindow = def.ThroughputWindow
	}
	if cfg.UsageSampleInterval <= 0 {
		cfg.UsageSampleInterval = def.UsageSampleInterval
	}
	if cfg.PublicIPTimeout <= 0 {
		cfg.PublicIPTimeout = def.PublicIPTimeout
	}
	if cfg.PingTarget == "" {
		cfg.PingTarget = def.PingTarget
	}
	if len(cfg.PublicIPServices) == 0 {
		cfg.PublicIPServices = def.PublicIPServices
	}

	c := &Collector{
		cfg:  cfg,
		plat: osinfo.New(),
	}
	c.platformFn = c.collectPlatform
	c.cpuFn = c.collectCPU
	c.memoryFn = c.collectMemory
	c.diskFn = c.collectDisk
	c.networkFn = c.collectNetwork
	return c
}

var (
	instance     *Collector
	instanceOnce sync.Once
)

// Get returns the process-wide shared collector, constructed lazily and
// exactly once. Prefer explicit New/NewWithConfig in composition roots;
// Get exists as the convenience accessor.
func Get() *Collector {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// Collect gathers the requested categories and assembles a snapshot. A nil
// opts requests all five categories. If any requested sub-collector fails
// the whole call fails; no partial snapshot is ever returned. Categories
// that were not requested are left nil, which is not an error.
func (c *Collector) Collect(ctx context.Context, opts *models.CollectionOptions) (*models.Snapshot, error) {
	if opts == nil {
		opts = models.DefaultCollectionOptions()
	}

	now := time.Now()
	snapshot := &models.Snapshot{
		Timestamp:     now.Unix(),
		SchemaVersion: models.SchemaVersion,
		CreatedAt:     now.UTC(),
	}

	if opts.IncludePlatform {
		info, err := c.platformFn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get device information: %w", err)
		}
		snapshot.Platform = info
	}

	if opts.IncludeCPU {
		info, err := c.cpuFn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get device information: %w", err)
		}
		snapshot.CPU = info
	}

	if opts.IncludeMemory {
		info, err := c.memoryFn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get device information: %w", err)
		}
		snapshot.Memory = info
	}

	if opts.IncludeDisk {
		info, err := c.diskFn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get device information: %w", err)
		}
		snapshot.Disk = info
	}

	if opts.IncludeNetwork {
		info, err := c.networkFn(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get device information: %w", err)
		}
		snapshot.Network = info
	}

	return snapshot, nil
}
