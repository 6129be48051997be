//go:build linux

package collector

import (
	"context"
	"fmt"
	"sync"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
)

// blockCache holds one sysfs block scan for the life of a Host.
type blockCache struct {
	once sync.Once
	info *block.Info
	err  error
}

var scanBlock = func() (*block.Info, error) { return ghw.Block() }

func (h *Host) blockInfo() (*block.Info, error) {
	h.blocks.once.Do(func() {
		info, err := scanBlock()
		if err != nil {
			h.blocks.err = fmt.Errorf("block info: %w", err)
			return
		}
		h.blocks.info = info
	})
	return h.blocks.info, h.blocks.err
}

// physicalDisks reads block device topology from sysfs through ghw.
func (h *Host) physicalDisks(_ context.Context) ([]PhysicalDisk, error) {
	info, err := h.blockInfo()
	if err != nil {
		return nil, err
	}

	disks := make([]PhysicalDisk, 0, len(info.Disks))
	for _, d := range info.Disks {
		if d.StorageController == block.StorageControllerLoop {
			continue
		}
		disks = append(disks, PhysicalDisk{
			Name:          d.Name,
			Model:         d.Model,
			InterfaceType: busInterface(d.BusPath, d.StorageController.String()),
		})
	}
	return disks, nil
}

func (h *Host) partitionParents(_ context.Context) (map[string]string, error) {
	info, err := h.blockInfo()
	if err != nil {
		return nil, err
	}

	children := make(map[string][]string, len(info.Disks))
	for _, d := range info.Disks {
		children[d.Name] = nil
		for _, p := range d.Partitions {
			children[d.Name] = append(children[d.Name], p.Name)
		}
	}
	return linuxParents(children), nil
}
