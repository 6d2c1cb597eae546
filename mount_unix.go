//go:build unix

package main

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// isMountPoint reports whether dir is the root of a mounted filesystem: its
// device differs from its parent's, or it is its own parent (the root).
func isMountPoint(dir string) (bool, error) {
	var stat, parentStat unix.Stat_t
	if err := unix.Lstat(dir, &stat); err != nil {
		return false, err
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false, nil
	}
	if err := unix.Lstat(filepath.Join(dir, ".."), &parentStat); err != nil {
		return false, err
	}
	if stat.Dev != parentStat.Dev {
		return true, nil
	}
	return stat.Ino == parentStat.Ino, nil
}
