package collector

// OSInfo holds the operating system name and release.
type OSInfo struct {
	Name    string `json:"name"`
	Release string `json:"release"`
}

// CPUInfo holds processor details.
type CPUInfo struct {
	Model      string  `json:"model"`
	Cores      int     `json:"cores"`
	Threads    int     `json:"threads"`
	CurrentMHz float64 `json:"current_mhz"`
}

// GPUInfo holds a discrete graphics adapter.
type GPUInfo struct {
	Name     string `json:"name"`
	MemoryMB uint64 `json:"memory_mb"`
}

// Partition is a mounted logical volume. ParentDisk is the Name of the
// physical disk holding it, or empty when the platform gives no association.
type Partition struct {
	Device     string `json:"device"`
	Mountpoint string `json:"mountpoint"`
	ParentDisk string `json:"parent_disk,omitempty"`
}

// PhysicalDisk is an underlying storage device.
type PhysicalDisk struct {
	Name          string `json:"name"`
	Model         string `json:"model"`
	InterfaceType string `json:"interface_type"`
}
