//go:build linux

package main

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const directIOAlignment = 4096

// openTestFile creates (or truncates) the test file for reading and writing.
func openTestFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

// openTestFileDirect is like openTestFile but bypasses the page cache. It
// reports false when the filesystem refuses O_DIRECT (tmpfs, some network
// filesystems) so the caller can fall back to buffered I/O.
func openTestFileDirect(path string) (*os.File, bool) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC|unix.O_DIRECT,
		0644)
	if err != nil {
		return nil, false
	}
	return f, true
}

func alignedBuffer(size int) []byte {
	buf := make([]byte, size+directIOAlignment)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := int(directIOAlignment - (addr % uintptr(directIOAlignment)))
	if offset == directIOAlignment {
		offset = 0
	}
	return buf[offset : offset+size]
}

func dropCaches() error {
	unix.Sync()
	if err := os.WriteFile("/proc/sys/vm/drop_caches", []byte("3\n"),
		0644); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}
