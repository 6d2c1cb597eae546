//go:build !linux && !darwin

package main

import (
	"errors"
	"os"
)

const directIOAlignment = 4096

func openTestFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

func openTestFileDirect(path string) (*os.File, bool) {
	return nil, false // no direct I/O
}

func alignedBuffer(size int) []byte {
	return make([]byte, size)
}

func dropCaches() error {
	return errors.New("dropping caches is not supported on this platform")
}
