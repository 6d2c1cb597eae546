package main

import "errors"

var (
	errInvalidSizeFormat = errors.New("invalid size format")
	errPathNotFound      = errors.New("path not found")
	errInsufficientSpace = errors.New("insufficient free space")
	errUnexpectedEOF     = errors.New("unexpected EOF")
	errEmptySampleSet    = errors.New("empty sample set")
	errInvalidConfig     = errors.New("invalid configuration")

	// errInterrupted reports a user cancellation. It is not a failure: the
	// run was cleaned up and the process should exit normally.
	errInterrupted = errors.New("interrupted")
)
