package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"
)

const (
	bytesPerGiB = 1 << 30
	bytesPerMiB = 1 << 20
)

type syncer interface {
	Sync() error
}

// newSample computes the throughput of one block. A non-positive duration
// cannot be divided by and yields a sample marked invalid.
func newSample(index uint32, blockSize int, elapsed time.Duration) throughputSample {
	sample := throughputSample{Index: index, Duration: elapsed}
	if elapsed <= 0 {
		return sample
	}
	seconds := elapsed.Seconds()
	sample.GBps = float64(blockSize) / bytesPerGiB / seconds
	sample.MBps = float64(blockSize) / bytesPerMiB / seconds
	sample.Valid = true
	return sample
}

// fillRandom fills block with random bytes so that neither the device nor
// the filesystem can compress or sparsify the written data.
func fillRandom(block []byte) error {
	_, err := rand.Read(block)
	return err
}

func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errInterrupted, err)
	}
	return nil
}

// writePass writes block n times at the start of w, rewinding after every
// write so the file never grows beyond one block. Each write (and the fsync
// when syncWrites is set) is timed individually.
func writePass(ctx context.Context, w io.WriteSeeker, block []byte, n uint32,
	syncWrites bool) iter.Seq2[throughputSample, error] {
	return func(yield func(throughputSample, error) bool) {
		s, canSync := w.(syncer)
		for i := uint32(0); i < n; i++ {
			if err := interrupted(ctx); err != nil {
				yield(throughputSample{Index: i}, err)
				return
			}
			start := time.Now()
			_, err := w.Write(block)
			if err == nil && syncWrites && canSync {
				err = s.Sync()
			}
			elapsed := time.Since(start)
			if err != nil {
				yield(throughputSample{Index: i},
					fmt.Errorf("writing block %d: %w", i, err))
				return
			}
			if _, err := w.Seek(0, io.SeekStart); err != nil {
				yield(throughputSample{Index: i},
					fmt.Errorf("rewinding after block %d: %w", i, err))
				return
			}
			if !yield(newSample(i, len(block), elapsed), nil) {
				return
			}
		}
	}
}

// readPass reads len(buf) bytes from the start of r n times, seeking back to
// offset zero before every read. A short read fails with errUnexpectedEOF.
func readPass(ctx context.Context, r io.ReadSeeker, buf []byte,
	n uint32) iter.Seq2[throughputSample, error] {
	return func(yield func(throughputSample, error) bool) {
		for i := uint32(0); i < n; i++ {
			if err := interrupted(ctx); err != nil {
				yield(throughputSample{Index: i}, err)
				return
			}
			if _, err := r.Seek(0, io.SeekStart); err != nil {
				yield(throughputSample{Index: i},
					fmt.Errorf("rewinding before block %d: %w", i, err))
				return
			}
			start := time.Now()
			nRead, err := io.ReadFull(r, buf)
			elapsed := time.Since(start)
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				yield(throughputSample{Index: i},
					fmt.Errorf("%w: block %d: read %d of %d bytes",
						errUnexpectedEOF, i, nRead, len(buf)))
				return
			}
			if err != nil {
				yield(throughputSample{Index: i},
					fmt.Errorf("reading block %d: %w", i, err))
				return
			}
			if !yield(newSample(i, len(buf), elapsed), nil) {
				return
			}
		}
	}
}
