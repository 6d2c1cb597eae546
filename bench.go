package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const testFileName = ".diskspeed.tmp"

type runState int

const (
	stateIdle runState = iota
	stateSpaceChecked
	stateFileOpen
	stateWritePassRunning
	stateWritePassDone
	stateReadPassRunning
	stateReadPassDone
	stateCleanup
	stateSuccess
	stateFailure
	stateInterrupted
)

var runStateNames = [...]string{
	stateIdle:             "idle",
	stateSpaceChecked:     "space checked",
	stateFileOpen:         "file open",
	stateWritePassRunning: "write pass running",
	stateWritePassDone:    "write pass done",
	stateReadPassRunning:  "read pass running",
	stateReadPassDone:     "read pass done",
	stateCleanup:          "cleanup",
	stateSuccess:          "success",
	stateFailure:          "failure",
	stateInterrupted:      "interrupted",
}

func (s runState) String() string {
	if s < 0 || int(s) >= len(runStateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return runStateNames[s]
}

// progressFunc is called synchronously after every sample of a pass, before
// the next block is timed. It must be cheap.
type progressFunc func(pass string, sample throughputSample, done, total uint32)

// benchmark runs one write pass followed by one read pass against a single
// temporary file in the target directory.
type benchmark struct {
	config    benchConfig
	logger    logger
	progress  progressFunc
	freeSpace freeSpaceFunc // nil means the real filesystem
	state     runState
}

func newBenchmark(config benchConfig, logger logger,
	progress progressFunc) *benchmark {
	if logger == nil {
		logger = nullLogger{}
	}
	if progress == nil {
		progress = func(string, throughputSample, uint32, uint32) {}
	}
	return &benchmark{config: config, logger: logger, progress: progress}
}

func (b *benchmark) setState(state runState) {
	b.logger.Debugf(1, "state: %s -> %s\n", b.state, state)
	b.state = state
}

// testFilePath returns the location of the temporary file for this run.
func (b *benchmark) testFilePath() string {
	return filepath.Join(b.config.TargetPath, testFileName)
}

// Run executes the benchmark. The temporary file is removed before Run
// returns, whatever the outcome. A cancelled ctx makes Run return an error
// wrapping errInterrupted and no report.
func (b *benchmark) Run(ctx context.Context) (report *benchReport, err error) {
	b.state = stateIdle
	mountPoint, err := resolveMountPoint(b.config.TargetPath)
	if err != nil {
		return nil, b.fail(err)
	}
	if err := checkSpace(b.config.TargetPath, b.config.BlockSize,
		b.freeSpace); err != nil {
		return nil, b.fail(err)
	}
	b.setState(stateSpaceChecked)
	if err := interrupted(ctx); err != nil {
		return nil, b.fail(err)
	}

	path := b.testFilePath()
	registerCleanup(path)
	file, direct, err := b.openFile(path)
	defer func() {
		b.setState(stateCleanup)
		if file != nil {
			file.Close()
		}
		if e := os.Remove(path); e != nil && !os.IsNotExist(e) && err == nil {
			report, err = nil, fmt.Errorf("removing test file: %w", e)
		}
		unregisterCleanup(path)
		if err != nil {
			b.fail(err)
		} else {
			b.setState(stateSuccess)
		}
	}()
	if err != nil {
		return nil, err
	}
	b.setState(stateFileOpen)

	blockSize := int(b.config.BlockSize)
	n := b.config.Iterations
	block := b.newBuffer(blockSize, direct)
	if err := fillRandom(block); err != nil {
		return nil, fmt.Errorf("generating test data: %w", err)
	}

	b.setState(stateWritePassRunning)
	writeStats, err := b.runPass("write",
		writePass(ctx, file, block, n, b.config.SyncWrites), n)
	if err != nil {
		return nil, err
	}
	b.setState(stateWritePassDone)

	if b.config.DropCaches {
		if err := dropCaches(); err != nil {
			b.logger.Printf("could not drop caches: %s\n", err)
		}
	}

	b.setState(stateReadPassRunning)
	readBuf := b.newBuffer(blockSize, direct)
	readStats, err := b.runPass("read", readPass(ctx, file, readBuf, n), n)
	if err != nil {
		return nil, err
	}
	b.setState(stateReadPassDone)

	return &benchReport{
		RunID:    uuid.NewString(),
		Target:   describeTarget(mountPoint, b.logger),
		Config:   b.config,
		DirectIO: direct,
		Write:    writeStats,
		Read:     readStats,
	}, nil
}

func (b *benchmark) fail(err error) error {
	if errors.Is(err, errInterrupted) {
		b.setState(stateInterrupted)
		return err
	}
	b.setState(stateFailure)
	return err
}

func (b *benchmark) openFile(path string) (*os.File, bool, error) {
	if b.config.DirectIO {
		if file, ok := openTestFileDirect(path); ok {
			return file, true, nil
		}
		b.logger.Printf("direct I/O not available on %s, using buffered I/O\n",
			b.config.TargetPath)
	}
	file, err := openTestFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("creating test file: %w", err)
	}
	return file, false, nil
}

func (b *benchmark) newBuffer(size int, direct bool) []byte {
	if direct {
		return alignedBuffer(size)
	}
	return make([]byte, size)
}

// runPass drains one sampler sequence into a fresh sample slice, reporting
// progress after each sample, then aggregates it.
func (b *benchmark) runPass(name string,
	pass iter.Seq2[throughputSample, error], n uint32) (passStatistics, error) {
	samples := make([]throughputSample, 0, n)
	start := time.Now()
	for sample, err := range pass {
		if err != nil {
			return passStatistics{}, fmt.Errorf("%s pass: %w", name, err)
		}
		samples = append(samples, sample)
		if !sample.Valid {
			b.logger.Debugf(0, "%s block %d: duration too small to measure\n",
				name, sample.Index)
		}
		b.progress(name, sample, uint32(len(samples)), n)
	}
	elapsed := time.Since(start)
	stats, err := aggregate(samples)
	if err != nil {
		return passStatistics{}, fmt.Errorf("%s pass: %w", name, err)
	}
	stats.Elapsed = elapsed
	b.logger.Debugf(1, "%s pass: %d samples in %s\n", name, stats.Samples,
		elapsed)
	return stats, nil
}
