package main

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// describeTarget looks up the device and filesystem type mounted at
// mountPoint. Missing information is left empty; the benchmark does not
// depend on it.
func describeTarget(mountPoint string, logger logger) targetInfo {
	info := targetInfo{MountPoint: mountPoint}
	partitions, err := disk.Partitions(true)
	if err != nil {
		logger.Debugf(0, "listing partitions: %s\n", err)
	}
	for _, p := range partitions {
		if filepath.Clean(p.Mountpoint) == mountPoint {
			info.Device = p.Device
			info.FSType = p.Fstype
		}
	}
	info.DiskType = classifyDisk(info.Device, info.FSType)
	return info
}

// classifyDisk makes a best guess at the kind of storage behind device.
func classifyDisk(device, fsType string) string {
	fs := strings.ToLower(fsType)
	if strings.HasPrefix(fs, "nfs") || fs == "cifs" || fs == "smbfs" ||
		fs == "smb3" {
		return "nfs"
	}
	if device == "" {
		return ""
	}
	if diskType := diskTypePlatform(device); diskType != "" {
		return diskType
	}
	return guessDiskType(device)
}

// guessDiskType makes a best guess from a device path string.
func guessDiskType(device string) string {
	dev := strings.ToLower(device)
	if strings.Contains(dev, "nfs") || strings.Contains(dev, ":") {
		return "nfs"
	}
	if strings.Contains(dev, "nvme") {
		return "nvme"
	}
	if strings.Contains(dev, "usb") {
		return "usb"
	}
	return "ssd"
}
