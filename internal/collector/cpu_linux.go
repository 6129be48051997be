//go:build linux

package collector

import "context"

func liveCPUClock(_ context.Context) (float64, error) {
	return scalingCurrentMHz(sysfsCPUPath)
}
