package main

import (
	"os"
	"sync"
)

// Files registered here are removed by cleanupAll when the process is forced
// to exit before the owning benchmark could run its own cleanup.
var (
	cleanupMu    sync.Mutex
	cleanupFiles []string
)

func registerCleanup(path string) {
	cleanupMu.Lock()
	cleanupFiles = append(cleanupFiles, path)
	cleanupMu.Unlock()
}

func unregisterCleanup(path string) {
	cleanupMu.Lock()
	for i, f := range cleanupFiles {
		if f == path {
			cleanupFiles = append(cleanupFiles[:i], cleanupFiles[i+1:]...)
			break
		}
	}
	cleanupMu.Unlock()
}

func cleanupAll() {
	cleanupMu.Lock()
	for _, f := range cleanupFiles {
		os.Remove(f)
	}
	cleanupFiles = nil
	cleanupMu.Unlock()
}
