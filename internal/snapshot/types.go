package snapshot

const (
	// BuiltInGPU is recorded as the GPU name when no discrete adapter exists.
	BuiltInGPU = "Built-in"

	// NotAvailable fills optional values that could not be determined.
	NotAvailable = "N/A"
)

// Record is one host snapshot. Build fills every field; callers must not
// modify it afterwards.
type Record struct {
	FullName        string  `json:"full_name"`
	OSInfo          string  `json:"os_info"`
	ComputerName    string  `json:"computer_name"`
	CPUModel        string  `json:"cpu_model"`
	CPUCores        int     `json:"cpu_cores"`
	CPUThreads      int     `json:"cpu_threads"`
	CPUFrequencyMHz float64 `json:"cpu_frequency_mhz"`
	TotalMemoryGB   float64 `json:"total_memory_gb"`
	TotalDiskGB     float64 `json:"total_disk_gb"`
	GPUName         string  `json:"gpu_name"`

	// GPUMemoryMB is nil when no discrete adapter exists.
	GPUMemoryMB *uint64 `json:"gpu_memory_mb"`
}

// GPUMemory returns the adapter memory in MB, or NotAvailable.
func (r Record) GPUMemory() any {
	if r.GPUMemoryMB == nil {
		return NotAvailable
	}
	return *r.GPUMemoryMB
}

// MediaType is a coarse disk classification.
type MediaType string

const (
	MediaSSD MediaType = "SSD"
	MediaUSB MediaType = "USB"
	MediaHDD MediaType = "HDD"
)

// MediaTypeFromInterface classifies a disk by the interface its controller
// reports. This is a heuristic: SCSI covers SATA SSDs and HDDs alike on
// many platforms.
func MediaTypeFromInterface(iface string) MediaType {
	switch iface {
	case "SCSI":
		return MediaSSD
	case "USB":
		return MediaUSB
	default:
		return MediaHDD
	}
}

// Strategy names how a partition was paired with a physical disk.
type Strategy string

const (
	// StrategyMapped pairs by the OS-reported partition to disk association.
	StrategyMapped Strategy = "mapped"
	// StrategyModulo pairs partition i with disk i mod len(disks).
	StrategyModulo Strategy = "modulo"
	// StrategyNone is used when no physical disk was enumerated at all.
	StrategyNone Strategy = "none"
)

// DiskEntry describes one readable partition and the disk behind it.
type DiskEntry struct {
	Device    string    `json:"device"`
	MediaType MediaType `json:"media_type"`
	DiskModel string    `json:"disk_model"`
	TotalSize string    `json:"total_size"`

	// Strategy is diagnostic only and is not persisted.
	Strategy Strategy `json:"strategy"`
}
