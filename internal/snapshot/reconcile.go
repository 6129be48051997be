package snapshot

import (
	"context"
	"errors"
	"io/fs"

	"github.com/go-logr/logr"

	"github.com/go-tangra/go-tangra-pcspecs/internal/collector"
)

const unknownModel = "Unknown"

// UsageFunc returns the total size of the volume mounted at mountpoint.
type UsageFunc func(ctx context.Context, mountpoint string) (uint64, error)

// Reconcile pairs each partition with a physical disk and sizes it.
//
// A partition whose ParentDisk names an enumerated disk is paired with that
// disk. Otherwise partition i is paired with disks[i mod len(disks)], where i
// counts every enumerated partition including skipped ones. That fallback is
// only an approximation on multi-disk hosts, so the strategy is logged.
//
// Partitions whose usage query is denied are left out. Any other usage
// error aborts reconciliation.
func Reconcile(ctx context.Context, log logr.Logger, parts []collector.Partition,
	disks []collector.PhysicalDisk, usage UsageFunc) ([]DiskEntry, error) {
	byName := make(map[string]collector.PhysicalDisk, len(disks))
	for _, d := range disks {
		byName[d.Name] = d
	}

	entries := make([]DiskEntry, 0, len(parts))
	for i, p := range parts {
		disk, strategy := pairDisk(i, p, disks, byName)

		total, err := usage(ctx, p.Mountpoint)
		if err != nil {
			if errors.Is(err, collector.ErrAccessDenied) || errors.Is(err, fs.ErrPermission) {
				log.V(1).Info("skipping unreadable partition", "device", p.Device, "mountpoint", p.Mountpoint)
				continue
			}
			return nil, probeErr("partition usage "+p.Mountpoint, err)
		}

		entry := DiskEntry{
			Device:    p.Device,
			MediaType: MediaTypeFromInterface(disk.InterfaceType),
			DiskModel: disk.Model,
			TotalSize: FormatSize(total),
			Strategy:  strategy,
		}
		log.Info("partition paired with disk",
			"device", entry.Device, "disk", disk.Name, "model", entry.DiskModel,
			"media", entry.MediaType, "strategy", strategy)
		entries = append(entries, entry)
	}
	return entries, nil
}

func pairDisk(i int, p collector.Partition, disks []collector.PhysicalDisk,
	byName map[string]collector.PhysicalDisk) (collector.PhysicalDisk, Strategy) {
	if d, ok := byName[p.ParentDisk]; ok && p.ParentDisk != "" {
		return d, StrategyMapped
	}
	if len(disks) == 0 {
		return collector.PhysicalDisk{Model: unknownModel}, StrategyNone
	}
	return disks[i%len(disks)], StrategyModulo
}
