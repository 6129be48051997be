//go:build linux

package collector

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockScanSharedAcrossDiskQueries(t *testing.T) {
	scans := 0
	orig := scanBlock
	t.Cleanup(func() { scanBlock = orig })
	scanBlock = func() (*block.Info, error) {
		scans++
		return &block.Info{Disks: []*block.Disk{
			{
				Name:              "sda",
				Model:             "Samsung SSD 870",
				StorageController: block.StorageControllerSCSI,
				BusPath:           "pci-0000:00:17.0-ata-1",
				Partitions:        []*block.Partition{{Name: "sda1"}},
			},
			{Name: "loop0", StorageController: block.StorageControllerLoop},
			{
				Name:              "sdb",
				Model:             "Flash Disk",
				StorageController: block.StorageControllerSCSI,
				BusPath:           "pci-0000:00:14.0-usb-0:2:1.0-scsi-0:0:0:0",
			},
		}}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHost(logr.Discard(), newMockExecutor())

	disks, err := h.physicalDisks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PhysicalDisk{
		{Name: "sda", Model: "Samsung SSD 870", InterfaceType: "SCSI"},
		{Name: "sdb", Model: "Flash Disk", InterfaceType: "USB"},
	}, disks)

	parents, err := h.partitionParents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sda", parents["/dev/sda1"])

	assert.Equal(t, 1, scans)
}
