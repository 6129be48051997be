//go:build windows

package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

type win32Processor struct {
	Name              string
	CurrentClockSpeed uint32
}

// liveCPUClock queries Win32_Processor for the clock the CPU runs at now.
// MaxClockSpeed, which gopsutil reports, is the nominal rating.
func liveCPUClock(_ context.Context) (float64, error) {
	var procs []win32Processor
	if err := wmi.Query("SELECT Name, CurrentClockSpeed FROM Win32_Processor", &procs); err != nil {
		return 0, fmt.Errorf("query Win32_Processor: %w", err)
	}
	for _, p := range procs {
		if p.CurrentClockSpeed > 0 {
			return float64(p.CurrentClockSpeed), nil
		}
	}
	return 0, errors.New("query Win32_Processor: no current clock speed")
}
