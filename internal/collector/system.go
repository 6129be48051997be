package collector

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OS reports the operating system family and release, e.g.
// "Linux" / "6.1.0-18-amd64" or "Windows" / "11".
func (h *Host) OS(ctx context.Context) (OSInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return OSInfo{}, fmt.Errorf("host info: %w", err)
	}
	return OSInfo{
		Name:    osName(info.OS),
		Release: osRelease(info.OS, info.KernelVersion),
	}, nil
}

// Hostname reports the network name of the machine.
func (h *Host) Hostname(_ context.Context) (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}
	return name, nil
}

// osName turns a GOOS-style identifier into a display name.
func osName(goos string) string {
	return cases.Title(language.English).String(goos)
}

var windowsNTReleases = map[string]string{
	"6.0": "Vista",
	"6.1": "7",
	"6.2": "8",
	"6.3": "8.1",
}

// firstWindows11Build is the first NT 10.0 build shipped as Windows 11.
const firstWindows11Build = 22000

// osRelease returns the kernel version, except on Windows where the NT
// version ("10.0.22631 Build 22631") becomes the product release ("11").
func osRelease(goos, kernel string) string {
	if goos != "windows" {
		return kernel
	}
	words := strings.Fields(kernel)
	if len(words) == 0 {
		return kernel
	}
	fields := strings.SplitN(words[0], ".", 3)
	if len(fields) < 2 {
		return kernel
	}
	nt := fields[0] + "." + fields[1]
	if r, ok := windowsNTReleases[nt]; ok {
		return r
	}
	if nt == "10.0" && len(fields) == 3 {
		if build, err := strconv.Atoi(fields[2]); err == nil && build >= firstWindows11Build {
			return "11"
		}
	}
	return fields[0]
}
