package main

import "time"

// benchConfig is the validated configuration for one benchmark run.
type benchConfig struct {
	TargetPath string `json:"target_path"`
	BlockSize  uint64 `json:"block_size"`
	TotalSize  uint64 `json:"total_size,omitempty"` // 0 when Iterations was given explicitly
	Iterations uint32 `json:"iterations"`
	DirectIO   bool   `json:"direct_io"`
	SyncWrites bool   `json:"sync_writes"`
	DropCaches bool   `json:"drop_caches"`
}

// throughputSample is the timing of a single block within a pass.
type throughputSample struct {
	Index    uint32
	Duration time.Duration
	GBps     float64
	MBps     float64
	Valid    bool // false when Duration was too small to measure
}

// throughputStats summarises one throughput view (GB/s or MB/s) of a pass.
type throughputStats struct {
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	StdDev *float64 `json:"stddev,omitempty"` // nil with fewer than 2 samples
}

// passStatistics holds the aggregated results of one write or read pass.
type passStatistics struct {
	Samples  int             `json:"samples"`
	Excluded int             `json:"excluded"`
	Elapsed  time.Duration   `json:"elapsed_ns"`
	GBps     throughputStats `json:"gbps"`
	MBps     throughputStats `json:"mbps"`
}

// targetInfo describes the filesystem and device under test.
type targetInfo struct {
	MountPoint string `json:"mount_point"`
	Device     string `json:"device,omitempty"`
	FSType     string `json:"fstype,omitempty"`
	DiskType   string `json:"disk_type,omitempty"` // nvme, ssd, hdd, usb, nfs
}

// benchReport is the final result of a successful run.
type benchReport struct {
	RunID    string         `json:"run_id"`
	Target   targetInfo     `json:"target"`
	Config   benchConfig    `json:"config"`
	DirectIO bool           `json:"direct_io_active"`
	Write    passStatistics `json:"write"`
	Read     passStatistics `json:"read"`
}
