//go:build !linux && !windows

package collector

import "context"

type blockCache struct{}

func (h *Host) physicalDisks(_ context.Context) ([]PhysicalDisk, error) {
	return nil, ErrNotSupported
}

func (h *Host) partitionParents(_ context.Context) (map[string]string, error) {
	return nil, ErrNotSupported
}
