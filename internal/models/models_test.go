package models

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
func intPtr(v int) *int             { return &v }
func uint64Ptr(v uint64) *uint64    { return &v }
func stringPtr(v string) *string    { return &v }

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Platform: &PlatformInfo{
			Hostname:       "host-01",
			MachineID:      stringPtr("abcdef0123456789abcdef0123456789"),
			OSName:         "linux",
			OSVersion:      "24.04",
			RuntimeVersion: "go1.25",
			Platform:       "ubuntu-24.04-x86_64",
			Architecture:   "x86_64",
			Processor:      "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz",
			BootTime:       1_699_990_000,
			Uptime:         10_000,
		},
		CPU: &CPUInfo{
			BrandRaw:      "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz",
			VendorIDRaw:   "GenuineIntel",
			Arch:          "amd64",
			Bits:          64,
			PhysicalCores: 6,
			LogicalCores:  12,
			CurrentFreq:   float64Ptr(2600.0),
			MinFreq:       float64Ptr(800.0),
			MaxFreq:       float64Ptr(4500.0),
			BaseFreq:      float64Ptr(2600.0),
			CPUUsage:      17.3,
			L2CacheSize:   int64Ptr(1572864),
			Family:        intPtr(6),
			Model:         intPtr(158),
			Stepping:      intPtr(10),
			Flags:         []string{"fpu", "vme", "sse2"},
		},
		Memory: &MemoryInfo{
			Total:       16 << 30,
			Available:   8 << 30,
			Percent:     50.0,
			Used:        8 << 30,
			Free:        4 << 30,
			SwapTotal:   2 << 30,
			SwapPercent: 0.0,
			Buffers:     uint64Ptr(1 << 28),
			Cached:      uint64Ptr(1 << 30),
			Shared:      uint64Ptr(1 << 27),
		},
		Disk: &DiskInfo{
			Partitions: []DiskPartitionInfo{
				{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4", Total: 1000, Used: 400, Free: 600, Percent: 40.0},
			},
			TotalDiskSpace:      1000,
			TotalUsedSpace:      400,
			TotalFreeSpace:      600,
			IOStats:             &DiskIOInfo{ReadCount: 10, WriteCount: 20, BusyTime: uint64Ptr(300)},
			AverageUsagePercent: float64Ptr(40.0),
		},
		Network: &NetworkInfo{
			PublicIP:       stringPtr("203.0.113.7"),
			LocalIP:        "192.168.1.10",
			MACAddress:     stringPtr("aa:bb:cc:dd:ee:ff"),
			Hostname:       "host-01",
			InterfaceSpeed: int64Ptr(1000),
			TotalBytesSent: 123456,
			TotalBytesRecv: 654321,
			InterfaceName:  "eth0",
			DownloadSpeed:  float64Ptr(93.5),
			UploadSpeed:    float64Ptr(41.02),
			Ping:           float64Ptr(23.0),
		},
		Timestamp:     1_700_000_000,
		SchemaVersion: SchemaVersion,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := EncodeSnapshot(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip changed the snapshot:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	data, err := EncodeSnapshot(sampleSnapshot())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	payload := string(data)
	for _, field := range []string{
		`"schema_version"`, `"created_at"`, `"machine_id"`, `"brand_raw"`,
		`"vendor_id_raw"`, `"l_two_cache_size"`, `"l_three_cache_size"`,
		`"total_disk_space"`, `"average_usage_percent"`, `"public_ip"`,
		`"interface_speed"`, `"download_speed"`, `"swap_percent"`,
	} {
		if !strings.Contains(payload, field) {
			t.Errorf("encoded snapshot missing field %s", field)
		}
	}
}

func TestDecodeSnapshotRejectsUnknownFields(t *testing.T) {
	if _, err := DecodeSnapshot([]byte(`{"timestamp": 1, "bogus_field": true}`)); err == nil {
		t.Error("unknown fields should be rejected")
	}
}

func TestValidateRejectsOutOfRangeValues(t *testing.T) {
	s := sampleSnapshot()
	s.Memory.Percent = 120.0
	if err := s.Validate(); err == nil {
		t.Error("memory percent above 100 should fail validation")
	}

	s = sampleSnapshot()
	s.CPU.CPUUsage = -1.0
	if err := s.Validate(); err == nil {
		t.Error("negative cpu usage should fail validation")
	}

	s = sampleSnapshot()
	s.Disk.Partitions[0].Percent = 101.0
	if err := s.Validate(); err == nil {
		t.Error("partition percent above 100 should fail validation")
	}

	s = sampleSnapshot()
	s.Network.PublicIP = stringPtr("not-an-ip")
	if err := s.Validate(); err == nil {
		t.Error("malformed public ip should fail validation")
	}

	s = sampleSnapshot()
	s.Platform.Uptime = -5
	if err := s.Validate(); err == nil {
		t.Error("negative uptime should fail validation")
	}
}

func TestValidateAcceptsPartialSnapshot(t *testing.T) {
	s := &Snapshot{
		Memory:        &MemoryInfo{Total: 1 << 30, Percent: 50.0},
		Timestamp:     1_700_000_000,
		SchemaVersion: SchemaVersion,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		t.Errorf("partial snapshot with nil categories should validate: %v", err)
	}
}

func TestDefaultCollectionOptions(t *testing.T) {
	opts := DefaultCollectionOptions()
	if !opts.IncludePlatform || !opts.IncludeCPU || !opts.IncludeMemory ||
		!opts.IncludeDisk || !opts.IncludeNetwork {
		t.Error("default options should enable every category")
	}
}
