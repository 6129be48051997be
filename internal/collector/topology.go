package collector

import (
	"fmt"
	"regexp"
	"strings"
)

// busInterface derives the interface string reported for a Linux block
// device. USB-attached devices are reported as "USB" whatever their
// transport protocol; everything else reports the controller name.
func busInterface(busPath, controller string) string {
	if strings.Contains(strings.ToLower(busPath), "usb") {
		return "USB"
	}
	return strings.ToUpper(controller)
}

// linuxParents maps partition device paths ("/dev/sda1") to the name of the
// disk holding them ("sda"). A filesystem created on the whole disk maps to
// the disk itself.
func linuxParents(children map[string][]string) map[string]string {
	parents := make(map[string]string)
	for disk, parts := range children {
		parents["/dev/"+disk] = disk
		for _, p := range parts {
			parents["/dev/"+p] = disk
		}
	}
	return parents
}

var wmiDeviceIDRe = regexp.MustCompile(`DeviceID="([^"]*)"`)

// wmiRefDeviceID extracts the DeviceID key from a WMI object reference such
// as `\\HOST\root\cimv2:Win32_LogicalDisk.DeviceID="C:"`.
func wmiRefDeviceID(ref string) (string, error) {
	m := wmiDeviceIDRe.FindStringSubmatch(ref)
	if m == nil {
		return "", fmt.Errorf("no DeviceID in WMI reference %q", ref)
	}
	return strings.ReplaceAll(m[1], `\\`, `\`), nil
}

// windowsDriveName is the Win32_DiskDrive DeviceID for a disk index.
func windowsDriveName(index uint32) string {
	return fmt.Sprintf(`\\.\PHYSICALDRIVE%d`, index)
}
