package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/siderolabs/go-smbios/smbios"
)

// sysfsCPUPath is where Linux exposes per-core cpufreq state.
var sysfsCPUPath = "/sys/devices/system/cpu"

// clockSource reports a CPU clock in MHz.
type clockSource func(ctx context.Context) (float64, error)

// CPU reports the processor brand, core and thread counts and the current
// clock. The clock comes from the first source that answers: the platform's
// live reading (cpufreq on Linux, Win32_Processor.CurrentClockSpeed on
// Windows), the value gopsutil parsed, then SMBIOS.
func (h *Host) CPU(ctx context.Context) (CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 {
		return CPUInfo{}, errors.New("cpu info: no processors reported")
	}

	cores, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("physical core count: %w", err)
	}
	threads, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("logical core count: %w", err)
	}

	mhz, err := h.currentMHz(ctx, infos[0].Mhz)
	if err != nil {
		return CPUInfo{}, err
	}

	return CPUInfo{
		Model:      strings.TrimSpace(infos[0].ModelName),
		Cores:      cores,
		Threads:    threads,
		CurrentMHz: mhz,
	}, nil
}

// currentMHz picks the clock from h.liveClock, then reported, then
// h.firmwareClock.
func (h *Host) currentMHz(ctx context.Context, reported float64) (float64, error) {
	mhz, err := h.liveClock(ctx)
	if err == nil && mhz > 0 {
		return mhz, nil
	}
	if err == nil {
		err = errors.New("live clock reported zero")
	}
	if reported > 0 {
		h.log.V(1).Info("live clock unavailable, using reported clock", "reason", err.Error())
		return reported, nil
	}
	fw, fwErr := h.firmwareClock(ctx)
	if fwErr != nil {
		return 0, fmt.Errorf("cpu frequency: %w", errors.Join(err, fwErr))
	}
	h.log.V(1).Info("live clock unavailable, using firmware clock", "reason", err.Error())
	return fw, nil
}

// scalingCurrentMHz averages scaling_cur_freq (kHz) across all cores.
func scalingCurrentMHz(root string) (float64, error) {
	paths, err := filepath.Glob(filepath.Join(root, "cpu[0-9]*", "cpufreq", "scaling_cur_freq"))
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, ErrNotSupported
	}

	var sum float64
	var n int
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
		if err != nil {
			continue
		}
		sum += khz
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("no readable scaling_cur_freq under %s", root)
	}
	return sum / float64(n) / 1000, nil
}

// smbiosCurrentMHz reads the processor speed recorded by firmware.
func smbiosCurrentMHz(_ context.Context) (float64, error) {
	s, err := smbios.New()
	if err != nil {
		return 0, fmt.Errorf("read smbios: %w", err)
	}
	for _, p := range s.ProcessorInformation {
		if p.CurrentSpeed > 0 {
			return float64(p.CurrentSpeed), nil
		}
	}
	return 0, errors.New("smbios: no processor speed recorded")
}
