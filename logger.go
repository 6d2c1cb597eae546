package main

import (
	"fmt"
	"io"
	"log"
)

// logger is the leveled logging interface used throughout the benchmark.
// Debug messages are emitted only when their level is at or below the
// configured maximum.
type logger interface {
	Printf(format string, v ...interface{})
	Debugf(level uint8, format string, v ...interface{})
}

type cmdLogger struct {
	level int16
	*log.Logger
}

func newLogger(w io.Writer, level int16) *cmdLogger {
	return &cmdLogger{level, log.New(w, "diskspeed: ", 0)}
}

func (l *cmdLogger) Debugf(level uint8, format string, v ...interface{}) {
	if l.level >= int16(level) {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{})        {}
func (nullLogger) Debugf(uint8, string, ...interface{}) {}
