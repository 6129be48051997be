package collector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GPUs lists NVIDIA adapters through nvidia-smi. A host without the driver
// tooling reports no adapters rather than an error.
func (h *Host) GPUs(ctx context.Context) ([]GPUInfo, error) {
	out, err := h.exec.Execute(ctx, "nvidia-smi",
		"--query-gpu=name,memory.total", "--format=csv,noheader,nounits")
	if err != nil {
		h.log.V(1).Info("no discrete GPU detected", "reason", err.Error())
		return nil, nil
	}
	return parseNvidiaSMI(out)
}

// parseNvidiaSMI reads "name, memory" CSV lines.
func parseNvidiaSMI(out string) ([]GPUInfo, error) {
	var gpus []GPUInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ",")
		if idx < 0 {
			return nil, fmt.Errorf("parse nvidia-smi line %q: missing memory column", line)
		}
		memMB, err := strconv.ParseFloat(strings.TrimSpace(line[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse nvidia-smi memory %q: %w", line[idx+1:], err)
		}
		gpus = append(gpus, GPUInfo{
			Name:     strings.TrimSpace(line[:idx]),
			MemoryMB: uint64(memMB),
		})
	}
	return gpus, nil
}
