package main

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// freeSpaceFunc returns the number of bytes available to unprivileged users
// on the filesystem holding path.
type freeSpaceFunc func(path string) (uint64, error)

func diskFreeSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// checkSpace fails unless strictly more than required bytes are free at
// path. Equal space counts as insufficient.
func checkSpace(path string, required uint64, freeSpace freeSpaceFunc) error {
	if freeSpace == nil {
		freeSpace = diskFreeSpace
	}
	free, err := freeSpace(path)
	if err != nil {
		return fmt.Errorf("querying free space on %s: %w", path, err)
	}
	if required >= free {
		return fmt.Errorf("%w on %s: required %s, available %s",
			errInsufficientSpace, path, formatSize(required), formatSize(free))
	}
	return nil
}
