//go:build !unix

package main

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// isMountPoint reports whether dir is listed as a partition mount point.
func isMountPoint(dir string) (bool, error) {
	partitions, err := disk.Partitions(true)
	if err != nil {
		return false, err
	}
	clean := trimSeparators(dir)
	for _, p := range partitions {
		if strings.EqualFold(trimSeparators(p.Mountpoint), clean) {
			return true, nil
		}
	}
	return false, nil
}

// trimSeparators makes `C:\` and `C:` compare equal.
func trimSeparators(path string) string {
	return strings.TrimRight(filepath.Clean(path), `\/`)
}
