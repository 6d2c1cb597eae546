package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// resolveMountPoint returns the mount point of the filesystem holding path,
// walking up the directory tree until a mount boundary is found.
func resolveMountPoint(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", errPathNotFound, path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%w: %s", errPathNotFound, path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	for {
		isMount, err := isMountPoint(abs)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", errPathNotFound, abs, err)
		}
		if isMount {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return abs, nil
		}
		abs = parent
	}
}
