package collector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
)

// RootDiskTotal reports the capacity of the volume holding the filesystem
// root ("/" or the current drive on Windows).
func (h *Host) RootDiskTotal(ctx context.Context) (uint64, error) {
	root := rootPath()
	u, err := disk.UsageWithContext(ctx, root)
	if err != nil {
		return 0, fmt.Errorf("disk usage %s: %w", root, err)
	}
	return u.Total, nil
}

// Partitions lists mounted physical-device partitions in the order the OS
// reports them, annotated with their parent disk where the platform knows it.
func (h *Host) Partitions(ctx context.Context) ([]Partition, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	parents, err := h.partitionParents(ctx)
	if err != nil {
		h.log.Info("partition to disk association unavailable", "reason", err.Error())
	}

	result := make([]Partition, len(parts))
	for i, p := range parts {
		result[i] = Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			ParentDisk: parents[p.Device],
		}
	}
	return result, nil
}

// PartitionUsage reports the total size of the volume mounted at mountpoint.
func (h *Host) PartitionUsage(ctx context.Context, mountpoint string) (uint64, error) {
	u, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return 0, fmt.Errorf("%w: %s: %w", ErrAccessDenied, mountpoint, err)
		}
		return 0, fmt.Errorf("disk usage %s: %w", mountpoint, err)
	}
	return u.Total, nil
}

// PhysicalDisks lists the storage devices behind the partitions.
func (h *Host) PhysicalDisks(ctx context.Context) ([]PhysicalDisk, error) {
	disks, err := h.physicalDisks(ctx)
	if errors.Is(err, ErrNotSupported) {
		h.log.Info("physical disk enumeration not supported on this platform")
		return nil, nil
	}
	return disks, err
}

func rootPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return string(filepath.Separator)
	}
	return filepath.VolumeName(wd) + string(filepath.Separator)
}
