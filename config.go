package main

import (
	"fmt"
	"math"
	"os"
)

const (
	defaultBlockSize = 100 << 20 // 100M
	defaultTestSize  = 1 << 30   // 1G
)

// options holds the raw command line values before validation.
type options struct {
	path        string
	blockSize   sizeValue
	testSize    sizeValue
	testSizeSet bool
	iterations  uint
	direct      bool
	syncWrites  bool
	dropCaches  bool
}

func defaultOptions() options {
	return options{
		blockSize: defaultBlockSize,
		testSize:  defaultTestSize,
	}
}

// newBenchConfig validates opts and derives the iteration count. With a test
// size the count is floor(testSize/blockSize), so a remainder is silently
// not measured; run logs a warning when that happens.
func newBenchConfig(opts options) (benchConfig, error) {
	path := opts.path
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return benchConfig{}, err
		}
		path = cwd
	}
	info, err := os.Stat(path)
	if err != nil {
		return benchConfig{}, fmt.Errorf("%w: %s", errPathNotFound, path)
	}
	if !info.IsDir() {
		return benchConfig{}, fmt.Errorf("%w: %s is not a directory",
			errInvalidConfig, path)
	}
	config := benchConfig{
		TargetPath: path,
		BlockSize:  uint64(opts.blockSize),
		DirectIO:   opts.direct,
		SyncWrites: opts.syncWrites,
		DropCaches: opts.dropCaches,
	}
	if config.BlockSize == 0 {
		return benchConfig{}, fmt.Errorf("%w: block size must be positive",
			errInvalidConfig)
	}
	if config.BlockSize > math.MaxInt {
		return benchConfig{}, fmt.Errorf("%w: block size %s is too large",
			errInvalidConfig, formatSize(config.BlockSize))
	}
	if config.DirectIO && config.BlockSize%directIOAlignment != 0 {
		return benchConfig{}, fmt.Errorf(
			"%w: direct I/O needs a block size that is a multiple of %d",
			errInvalidConfig, directIOAlignment)
	}
	if opts.iterations > 0 && opts.testSizeSet {
		return benchConfig{}, fmt.Errorf(
			"%w: specify either a test size or an iteration count, not both",
			errInvalidConfig)
	}
	var iterations uint64
	if opts.iterations > 0 {
		iterations = uint64(opts.iterations)
	} else {
		config.TotalSize = uint64(opts.testSize)
		iterations = config.TotalSize / config.BlockSize
		if iterations == 0 {
			return benchConfig{}, fmt.Errorf(
				"%w: test size %s is smaller than block size %s",
				errInvalidConfig, formatSize(config.TotalSize),
				formatSize(config.BlockSize))
		}
	}
	if iterations > math.MaxUint32 {
		return benchConfig{}, fmt.Errorf("%w: too many iterations (%d)",
			errInvalidConfig, iterations)
	}
	config.Iterations = uint32(iterations)
	return config, nil
}
