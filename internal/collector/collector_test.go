package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	outputs map[string]string
	errors  map[string]error
	calls   map[string]int
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{
		outputs: make(map[string]string),
		errors:  make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (m *mockExecutor) Execute(_ context.Context, name string, _ ...string) (string, error) {
	m.calls[name]++
	if err, ok := m.errors[name]; ok {
		return "", &CommandError{Command: name, Err: err}
	}
	if out, ok := m.outputs[name]; ok {
		return out, nil
	}
	return "", fmt.Errorf("command %q not configured in mock", name)
}

func TestGPUs(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*mockExecutor)
		want    []GPUInfo
		wantErr bool
	}{
		{
			name: "single adapter",
			setup: func(m *mockExecutor) {
				m.outputs["nvidia-smi"] = "NVIDIA GeForce RTX 3080, 10240"
			},
			want: []GPUInfo{{Name: "NVIDIA GeForce RTX 3080", MemoryMB: 10240}},
		},
		{
			name: "two adapters with comma in name",
			setup: func(m *mockExecutor) {
				m.outputs["nvidia-smi"] = "Tesla T4, 15360\nNVIDIA A100-SXM4, 40GB, 40960\n"
			},
			want: []GPUInfo{
				{Name: "Tesla T4", MemoryMB: 15360},
				{Name: "NVIDIA A100-SXM4, 40GB", MemoryMB: 40960},
			},
		},
		{
			name: "tool missing means no adapters",
			setup: func(m *mockExecutor) {
				m.errors["nvidia-smi"] = errors.New("executable file not found in $PATH")
			},
			want: nil,
		},
		{
			name: "garbage memory column",
			setup: func(m *mockExecutor) {
				m.outputs["nvidia-smi"] = "Tesla T4, [N/A]"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := newMockExecutor()
			tt.setup(exec)
			h := NewHost(logr.Discard(), exec)

			got, err := h.GPUs(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, exec.calls["nvidia-smi"])
		})
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 9")
	err := fmt.Errorf("gpu: %w", &CommandError{Command: "nvidia-smi", Err: inner})

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "nvidia-smi", cmdErr.Command)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `command "nvidia-smi" failed`)
}

func TestExecutorTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCommandExecutor(0).Execute(ctx, "echo", "test")
	require.Error(t, err)

	var cmdErr *CommandError
	assert.ErrorAs(t, err, &cmdErr)
}

func TestScalingCurrentMHz(t *testing.T) {
	root := t.TempDir()
	writeFreq := func(cpu, khz string) {
		dir := filepath.Join(root, cpu, "cpufreq")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scaling_cur_freq"), []byte(khz+"\n"), 0o644))
	}

	writeFreq("cpu0", "3000000")
	writeFreq("cpu1", "3400000")
	writeFreq("cpu2", "garbage")

	mhz, err := scalingCurrentMHz(root)
	require.NoError(t, err)
	assert.InDelta(t, 3200.0, mhz, 0.001)
}

func TestScalingCurrentMHzMissing(t *testing.T) {
	_, err := scalingCurrentMHz(t.TempDir())
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestBusInterface(t *testing.T) {
	tests := []struct {
		busPath    string
		controller string
		want       string
	}{
		{"pci-0000:00:14.0-usb-0:1:1.0-scsi-0:0:0:0", "SCSI", "USB"},
		{"pci-0000:00:17.0-ata-1", "SCSI", "SCSI"},
		{"pci-0000:01:00.0-nvme-1", "NVMe", "NVME"},
		{"", "virtio", "VIRTIO"},
	}
	for _, tt := range tests {
		t.Run(tt.busPath+"/"+tt.controller, func(t *testing.T) {
			assert.Equal(t, tt.want, busInterface(tt.busPath, tt.controller))
		})
	}
}

func TestLinuxParents(t *testing.T) {
	parents := linuxParents(map[string][]string{
		"sda":     {"sda1", "sda2"},
		"nvme0n1": {"nvme0n1p1"},
		"sdb":     nil,
	})

	assert.Equal(t, map[string]string{
		"/dev/sda":       "sda",
		"/dev/sda1":      "sda",
		"/dev/sda2":      "sda",
		"/dev/nvme0n1":   "nvme0n1",
		"/dev/nvme0n1p1": "nvme0n1",
		"/dev/sdb":       "sdb",
	}, parents)
}

func TestWMIRefDeviceID(t *testing.T) {
	id, err := wmiRefDeviceID(`\\DESKTOP\root\cimv2:Win32_DiskPartition.DeviceID="Disk #0, Partition #1"`)
	require.NoError(t, err)
	assert.Equal(t, "Disk #0, Partition #1", id)

	id, err = wmiRefDeviceID(`\\DESKTOP\root\cimv2:Win32_LogicalDisk.DeviceID="C:"`)
	require.NoError(t, err)
	assert.Equal(t, "C:", id)

	_, err = wmiRefDeviceID(`Win32_LogicalDisk.Name="C:"`)
	assert.Error(t, err)

	assert.Equal(t, `\\.\PHYSICALDRIVE2`, windowsDriveName(2))
}

func TestOSName(t *testing.T) {
	assert.Equal(t, "Linux", osName("linux"))
	assert.Equal(t, "Windows", osName("windows"))
	assert.Equal(t, "Darwin", osName("darwin"))
}

func fixedClock(mhz float64, err error) (clockSource, *int) {
	calls := 0
	return func(context.Context) (float64, error) {
		calls++
		return mhz, err
	}, &calls
}

func TestCurrentMHzOrder(t *testing.T) {
	errNoLive := errors.New("no live clock")
	errNoFirmware := errors.New("no smbios")

	tests := []struct {
		name          string
		live          float64
		liveErr       error
		reported      float64
		firmware      float64
		firmwareErr   error
		want          float64
		wantErr       bool
		firmwareCalls int
	}{
		{name: "live clock wins over nominal", live: 1800, reported: 3600, firmware: 3000, want: 1800},
		{name: "reported when live fails", liveErr: errNoLive, reported: 3600, firmware: 3000, want: 3600},
		{name: "reported when live is zero", reported: 3600, firmware: 3000, want: 3600},
		{name: "firmware last", liveErr: errNoLive, firmware: 3000, want: 3000, firmwareCalls: 1},
		{name: "all fail", liveErr: errNoLive, firmwareErr: errNoFirmware, wantErr: true, firmwareCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost(logr.Discard(), newMockExecutor())
			h.liveClock, _ = fixedClock(tt.live, tt.liveErr)
			var fwCalls *int
			h.firmwareClock, fwCalls = fixedClock(tt.firmware, tt.firmwareErr)

			got, err := h.currentMHz(context.Background(), tt.reported)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errNoLive)
				assert.ErrorIs(t, err, errNoFirmware)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.firmwareCalls, *fwCalls)
		})
	}
}

func TestOSRelease(t *testing.T) {
	tests := []struct {
		goos   string
		kernel string
		want   string
	}{
		{"linux", "6.1.0-18-amd64", "6.1.0-18-amd64"},
		{"windows", "10.0.19045 Build 19045", "10"},
		{"windows", "10.0.22631 Build 22631", "11"},
		{"windows", "6.1.7601 Build 7601", "7"},
		{"windows", "6.3.9600 Build 9600", "8.1"},
		{"windows", "", ""},
		{"darwin", "23.4.0", "23.4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.kernel, func(t *testing.T) {
			assert.Equal(t, tt.want, osRelease(tt.goos, tt.kernel))
		})
	}
}
