package collector

import (
	"context"

	"github.com/go-logr/logr"
)

// Probe supplies the raw hardware and OS facts of the local host.
type Probe interface {
	OS(ctx context.Context) (OSInfo, error)
	Hostname(ctx context.Context) (string, error)
	CPU(ctx context.Context) (CPUInfo, error)
	TotalMemory(ctx context.Context) (uint64, error)
	RootDiskTotal(ctx context.Context) (uint64, error)

	// GPUs returns the discrete adapters. An empty slice means none.
	GPUs(ctx context.Context) ([]GPUInfo, error)

	Partitions(ctx context.Context) ([]Partition, error)

	// PartitionUsage returns the total size in bytes of the volume mounted at
	// mountpoint. It returns an error wrapping ErrAccessDenied when the
	// volume cannot be queried.
	PartitionUsage(ctx context.Context, mountpoint string) (uint64, error)

	PhysicalDisks(ctx context.Context) ([]PhysicalDisk, error)
}

// Host is the Probe for the machine the process runs on. Platform specific
// parts live in the *_linux.go, *_windows.go and *_other.go files.
type Host struct {
	log  logr.Logger
	exec CommandExecutor

	liveClock     clockSource
	firmwareClock clockSource

	blocks blockCache
}

var _ Probe = (*Host)(nil)

// NewHost returns a Probe for the local machine. A nil executor selects one
// with the default timeout.
func NewHost(log logr.Logger, exec CommandExecutor) *Host {
	if exec == nil {
		exec = NewCommandExecutor(0)
	}
	return &Host{
		log:           log.WithName("collector"),
		exec:          exec,
		liveClock:     liveCPUClock,
		firmwareClock: smbiosCurrentMHz,
	}
}
