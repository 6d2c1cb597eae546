//go:build darwin

package main

import (
	"os"
	"os/exec"
	"time"

	"golang.org/x/sys/unix"
)

const directIOAlignment = 4096

func openTestFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

// openTestFileDirect disables the unified buffer cache for the file with
// F_NOCACHE, which is the closest darwin equivalent of O_DIRECT.
func openTestFileDirect(path string) (*os.File, bool) {
	f, err := openTestFile(path)
	if err != nil {
		return nil, false
	}
	if _, err := unix.FcntlInt(f.Fd(), unix.F_NOCACHE, 1); err != nil {
		f.Close()
		return nil, false
	}
	return f, true
}

func alignedBuffer(size int) []byte {
	return make([]byte, size) // F_NOCACHE doesn't require alignment
}

func dropCaches() error {
	unix.Sync()
	if err := exec.Command("purge").Run(); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}
