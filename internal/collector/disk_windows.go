//go:build windows

package collector

import (
	"context"
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// blockCache is unused on Windows; WMI queries are answered per call.
type blockCache struct{}

type win32DiskDrive struct {
	Index         uint32
	DeviceID      string
	Model         string
	InterfaceType string
}

type win32DiskPartition struct {
	DeviceID  string
	DiskIndex uint32
}

type win32LogicalDiskToPartition struct {
	Antecedent string
	Dependent  string
}

// physicalDisks queries Win32_DiskDrive in WMI enumeration order.
func (h *Host) physicalDisks(_ context.Context) ([]PhysicalDisk, error) {
	var drives []win32DiskDrive
	if err := wmi.Query("SELECT Index, DeviceID, Model, InterfaceType FROM Win32_DiskDrive", &drives); err != nil {
		return nil, fmt.Errorf("query Win32_DiskDrive: %w", err)
	}

	disks := make([]PhysicalDisk, len(drives))
	for i, d := range drives {
		disks[i] = PhysicalDisk{
			Name:          windowsDriveName(d.Index),
			Model:         d.Model,
			InterfaceType: d.InterfaceType,
		}
	}
	return disks, nil
}

// partitionParents follows Win32_LogicalDiskToPartition from drive letters
// to partitions and Win32_DiskPartition.DiskIndex from partitions to drives.
func (h *Host) partitionParents(_ context.Context) (map[string]string, error) {
	var parts []win32DiskPartition
	if err := wmi.Query("SELECT DeviceID, DiskIndex FROM Win32_DiskPartition", &parts); err != nil {
		return nil, fmt.Errorf("query Win32_DiskPartition: %w", err)
	}
	diskIndex := make(map[string]uint32, len(parts))
	for _, p := range parts {
		diskIndex[p.DeviceID] = p.DiskIndex
	}

	var links []win32LogicalDiskToPartition
	if err := wmi.Query("SELECT Antecedent, Dependent FROM Win32_LogicalDiskToPartition", &links); err != nil {
		return nil, fmt.Errorf("query Win32_LogicalDiskToPartition: %w", err)
	}

	parents := make(map[string]string, len(links))
	for _, l := range links {
		partID, err := wmiRefDeviceID(l.Antecedent)
		if err != nil {
			return nil, err
		}
		letter, err := wmiRefDeviceID(l.Dependent)
		if err != nil {
			return nil, err
		}
		idx, ok := diskIndex[partID]
		if !ok {
			continue
		}
		parents[letter] = windowsDriveName(idx)
	}
	return parents, nil
}
