// Package snapshot turns raw probe facts into the record and disk entries
// that get appended to the inventory workbook.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
)

// ErrProbeUnavailable wraps every failure to retrieve a hardware fact.
var ErrProbeUnavailable = errors.New("hardware probe unavailable")

func probeErr(fact string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrProbeUnavailable, fact, err)
}

// Build queries the probe and assembles the host record. The first probe
// failure aborts the build; nothing is retried.
func Build(ctx context.Context, log logr.Logger, fullName string, probe collector.Probe) (Record, error) {
	osInfo, err := probe.OS(ctx)
	if err != nil {
		return Record{}, probeErr("os", err)
	}
	hostname, err := probe.Hostname(ctx)
	if err != nil {
		return Record{}, probeErr("hostname", err)
	}
	cpu, err := probe.CPU(ctx)
	if err != nil {
		return Record{}, probeErr("cpu", err)
	}
	memBytes, err := probe.TotalMemory(ctx)
	if err != nil {
		return Record{}, probeErr("memory", err)
	}
	diskBytes, err := probe.RootDiskTotal(ctx)
	if err != nil {
		return Record{}, probeErr("root disk", err)
	}
	gpus, err := probe.GPUs(ctx)
	if err != nil {
		return Record{}, probeErr("gpu", err)
	}

	rec := Record{
		FullName:        fullName,
		OSInfo:          osInfo.Name + " " + osInfo.Release,
		ComputerName:    hostname,
		CPUModel:        cpu.Model,
		CPUCores:        cpu.Cores,
		CPUThreads:      cpu.Threads,
		CPUFrequencyMHz: cpu.CurrentMHz,
		TotalMemoryGB:   toGB(memBytes),
		TotalDiskGB:     toGB(diskBytes),
		GPUName:         BuiltInGPU,
	}
	if len(gpus) > 0 {
		mb := gpus[0].MemoryMB
		rec.GPUName = gpus[0].Name
		rec.GPUMemoryMB = &mb
	}

	log.Info("System information retrieved successfully",
		"computer", rec.ComputerName, "os", rec.OSInfo, "gpu", rec.GPUName)
	return rec, nil
}

// Disks enumerates partitions and physical disks and reconciles them.
func Disks(ctx context.Context, log logr.Logger, probe collector.Probe) ([]DiskEntry, error) {
	parts, err := probe.Partitions(ctx)
	if err != nil {
		return nil, probeErr("partitions", err)
	}
	disks, err := probe.PhysicalDisks(ctx)
	if err != nil {
		return nil, probeErr("physical disks", err)
	}
	return Reconcile(ctx, log, parts, disks, probe.PartitionUsage)
}
