// Package collectortest provides an in-memory collector.Probe for tests.
package collectortest

import (
	"context"
	"fmt"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
)

// Fake answers every probe call from its fields. Errs, keyed by method name
// ("OS", "CPU", ...), forces that method to fail. UsageErrs forces
// PartitionUsage to fail for a mountpoint.
type Fake struct {
	OSInfo        collector.OSInfo
	Host          string
	CPUInfo       collector.CPUInfo
	MemoryBytes   uint64
	RootBytes     uint64
	GPUList       []collector.GPUInfo
	PartitionList []collector.Partition
	DiskList      []collector.PhysicalDisk
	Usage         map[string]uint64
	UsageErrs     map[string]error
	Errs          map[string]error
}

var _ collector.Probe = (*Fake)(nil)

// Linux returns the reference host: a 4 core / 8 thread Linux box with
// 16 GiB of RAM, a 500 GiB root volume, no discrete GPU and two readable
// partitions on one SATA disk.
func Linux() *Fake {
	return &Fake{
		OSInfo:      collector.OSInfo{Name: "Linux", Release: "6.1"},
		Host:        "build-01",
		CPUInfo:     collector.CPUInfo{Model: "X", Cores: 4, Threads: 8, CurrentMHz: 3200.0},
		MemoryBytes: 17179869184,
		RootBytes:   536870912000,
		PartitionList: []collector.Partition{
			{Device: "/dev/sda1", Mountpoint: "/", ParentDisk: "sda"},
			{Device: "/dev/sda2", Mountpoint: "/home", ParentDisk: "sda"},
		},
		DiskList: []collector.PhysicalDisk{
			{Name: "sda", Model: "Samsung SSD 870", InterfaceType: "SCSI"},
		},
		Usage: map[string]uint64{
			"/":     107374182400,
			"/home": 429496729600,
		},
	}
}

func (f *Fake) fail(method string) error {
	if err, ok := f.Errs[method]; ok {
		return err
	}
	return nil
}

func (f *Fake) OS(context.Context) (collector.OSInfo, error) {
	return f.OSInfo, f.fail("OS")
}

func (f *Fake) Hostname(context.Context) (string, error) {
	return f.Host, f.fail("Hostname")
}

func (f *Fake) CPU(context.Context) (collector.CPUInfo, error) {
	return f.CPUInfo, f.fail("CPU")
}

func (f *Fake) TotalMemory(context.Context) (uint64, error) {
	return f.MemoryBytes, f.fail("TotalMemory")
}

func (f *Fake) RootDiskTotal(context.Context) (uint64, error) {
	return f.RootBytes, f.fail("RootDiskTotal")
}

func (f *Fake) GPUs(context.Context) ([]collector.GPUInfo, error) {
	return f.GPUList, f.fail("GPUs")
}

func (f *Fake) Partitions(context.Context) ([]collector.Partition, error) {
	return f.PartitionList, f.fail("Partitions")
}

func (f *Fake) PartitionUsage(_ context.Context, mountpoint string) (uint64, error) {
	if err, ok := f.UsageErrs[mountpoint]; ok {
		return 0, err
	}
	total, ok := f.Usage[mountpoint]
	if !ok {
		return 0, fmt.Errorf("no usage configured for %s", mountpoint)
	}
	return total, nil
}

func (f *Fake) PhysicalDisks(context.Context) ([]collector.PhysicalDisk, error) {
	return f.DiskList, f.fail("PhysicalDisks")
}
