//go:build linux

package main

import (
	"os"
	"path/filepath"
	"strings"
)

// diskTypePlatform classifies a block device using sysfs. Partitions are
// mapped to their parent disk first (/dev/nvme0n1p2 -> nvme0n1).
func diskTypePlatform(device string) string {
	if !strings.HasPrefix(device, "/dev/") {
		return ""
	}
	name := filepath.Base(device)
	if resolved, err := filepath.EvalSymlinks(device); err == nil {
		name = filepath.Base(resolved) // /dev/mapper/* and /dev/disk/by-*
	}
	sysPath, err := filepath.EvalSymlinks(filepath.Join("/sys/class/block", name))
	if err != nil {
		return ""
	}
	if _, err := os.Stat(filepath.Join(sysPath, "partition")); err == nil {
		sysPath = filepath.Dir(sysPath)
		name = filepath.Base(sysPath)
	}
	if strings.Contains(sysPath, "/usb") {
		return "usb"
	}
	if strings.HasPrefix(name, "nvme") {
		return "nvme"
	}
	switch readSysfsFile(filepath.Join(sysPath, "queue", "rotational")) {
	case "1":
		return "hdd"
	case "0":
		return "ssd"
	}
	return ""
}

func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
