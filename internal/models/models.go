// Package models defines the data structures for device information snapshots
package models

import "time"

// SchemaVersion identifies the snapshot schema carried by this build.
const SchemaVersion = "1.0.0"

// CollectionOptions selects which categories a Collect call gathers.
// A nil *CollectionOptions means all five categories.
type CollectionOptions struct {
	IncludePlatform bool `json:"include_platform"`
	IncludeCPU      bool `json:"include_cpu"`
	IncludeMemory   bool `json:"include_memory"`
	IncludeDisk     bool `json:"include_disk"`
	IncludeNetwork  bool `json:"include_network"`
}

// DefaultCollectionOptions returns options with every category enabled.
func DefaultCollectionOptions() *CollectionOptions {
	return &CollectionOptions{
		IncludePlatform: true,
		IncludeCPU:      true,
		IncludeMemory:   true,
		IncludeDisk:     true,
		IncludeNetwork:  true,
	}
}

// Snapshot is the aggregated result of one collection call. A category field
// is non-nil exactly when it was requested and its collection succeeded;
// a requested category that fails aborts the whole call instead.
type Snapshot struct {
	Platform      *PlatformInfo `json:"platform" validate:"omitempty"`
	CPU           *CPUInfo      `json:"cpu" validate:"omitempty"`
	Memory        *MemoryInfo   `json:"memory" validate:"omitempty"`
	Disk          *DiskInfo     `json:"disk" validate:"omitempty"`
	Network       *NetworkInfo  `json:"network" validate:"omitempty"`
	Timestamp     int64         `json:"timestamp" validate:"gte=0"`
	SchemaVersion string        `json:"schema_version" validate:"max=64"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PlatformInfo holds OS identity and the best-effort machine identifier.
type PlatformInfo struct {
	Hostname       string  `json:"hostname" validate:"max=253"`
	MachineID      *string `json:"machine_id" validate:"omitempty,max=128"`
	OSName         string  `json:"os_name" validate:"max=32"`
	OSVersion      string  `json:"os_version" validate:"max=256"`
	RuntimeVersion string  `json:"runtime_version" validate:"max=64"`
	Platform       string  `json:"platform" validate:"max=256"`
	Architecture   string  `json:"architecture" validate:"max=64"`
	Processor      string  `json:"processor" validate:"max=256"`
	BootTime       int64   `json:"boot_time" validate:"gte=0"`
	Uptime         int64   `json:"uptime" validate:"gte=0"`
}

// CPUInfo holds static CPU identity plus one instantaneous usage sample.
type CPUInfo struct {
	BrandRaw      string   `json:"brand_raw" validate:"max=256"`
	VendorIDRaw   string   `json:"vendor_id_raw" validate:"max=64"`
	Arch          string   `json:"arch" validate:"max=64"`
	Bits          int      `json:"bits" validate:"gte=1"`
	PhysicalCores int      `json:"physical_cores" validate:"gte=1"`
	LogicalCores  int      `json:"logical_cores" validate:"gte=1"`
	CurrentFreq   *float64 `json:"current_freq" validate:"omitempty,gte=0"`
	MinFreq       *float64 `json:"min_freq" validate:"omitempty,gte=0"`
	MaxFreq       *float64 `json:"max_freq" validate:"omitempty,gte=0"`
	BaseFreq      *float64 `json:"base_freq" validate:"omitempty,gte=0"`
	CPUUsage      float64  `json:"cpu_usage" validate:"gte=0,lte=100"`
	L2CacheSize   *int64   `json:"l_two_cache_size" validate:"omitempty,gte=0"`
	L3CacheSize   *int64   `json:"l_three_cache_size" validate:"omitempty,gte=0"`
	Family        *int     `json:"family" validate:"omitempty,gte=0"`
	Model         *int     `json:"model" validate:"omitempty,gte=0"`
	Stepping      *int     `json:"stepping" validate:"omitempty,gte=0"`
	Flags         []string `json:"flags" validate:"dive,max=64"`
}

// MemoryInfo holds physical and swap memory statistics. Buffers, cached and
// shared sizes are a Linux-family concept and stay nil elsewhere.
type MemoryInfo struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Percent     float64 `json:"percent" validate:"gte=0,lte=100"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	SwapTotal   uint64  `json:"swap_total"`
	SwapUsed    uint64  `json:"swap_used"`
	SwapFree    uint64  `json:"swap_free"`
	SwapPercent float64 `json:"swap_percent" validate:"gte=0,lte=100"`
	Buffers     *uint64 `json:"buffers"`
	Cached      *uint64 `json:"cached"`
	Shared      *uint64 `json:"shared"`
}

// DiskPartitionInfo holds usage data for a single accessible partition.
type DiskPartitionInfo struct {
	Device     string  `json:"device" validate:"max=256"`
	Mountpoint string  `json:"mountpoint" validate:"max=4096"`
	Fstype     string  `json:"fstype" validate:"max=64"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Percent    float64 `json:"percent" validate:"gte=0,lte=100"`
}

// DiskIOInfo holds system-wide cumulative disk I/O counters. Fields the OS
// does not expose stay nil.
type DiskIOInfo struct {
	ReadCount        uint64  `json:"read_count"`
	WriteCount       uint64  `json:"write_count"`
	ReadBytes        uint64  `json:"read_bytes"`
	WriteBytes       uint64  `json:"write_bytes"`
	ReadTime         uint64  `json:"read_time"`
	WriteTime        uint64  `json:"write_time"`
	ReadMergedCount  *uint64 `json:"read_merged_count"`
	WriteMergedCount *uint64 `json:"write_merged_count"`
	BusyTime         *uint64 `json:"busy_time"`
}

// DiskInfo aggregates all accessible partitions plus optional I/O counters.
type DiskInfo struct {
	Partitions          []DiskPartitionInfo `json:"partitions" validate:"dive"`
	TotalDiskSpace      uint64              `json:"total_disk_space"`
	TotalUsedSpace      uint64              `json:"total_used_space"`
	TotalFreeSpace      uint64              `json:"total_free_space"`
	IOStats             *DiskIOInfo         `json:"io_stats" validate:"omitempty"`
	AverageUsagePercent *float64            `json:"average_usage_percent" validate:"omitempty,gte=0,lte=100"`
}

// NetworkInfo holds interface identity, cumulative traffic counters, and the
// live throughput and latency measurements.
type NetworkInfo struct {
	PublicIP       *string  `json:"public_ip" validate:"omitempty,ipv4"`
	LocalIP        string   `json:"local_ip" validate:"max=64"`
	MACAddress     *string  `json:"mac_address" validate:"omitempty,max=64"`
	Hostname       string   `json:"hostname" validate:"max=253"`
	InterfaceSpeed *int64   `json:"interface_speed" validate:"omitempty,gt=0"`
	TotalBytesSent uint64   `json:"total_bytes_sent"`
	TotalBytesRecv uint64   `json:"total_bytes_recv"`
	InterfaceName  string   `json:"interface_name" validate:"max=64"`
	DownloadSpeed  *float64 `json:"download_speed" validate:"omitempty,gte=0"`
	UploadSpeed    *float64 `json:"upload_speed" validate:"omitempty,gte=0"`
	Ping           *float64 `json:"ping" validate:"omitempty,gte=0"`
}
