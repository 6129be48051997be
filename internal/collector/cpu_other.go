//go:build !linux && !windows

package collector

import "context"

func liveCPUClock(_ context.Context) (float64, error) {
	return 0, ErrNotSupported
}
