// Package logging provides the small, prefix-tagged loggers used across
// every component (panel, metrics, wan, printer, render, main).
package logging

import (
	"log"
	"os"
)

// Logger wraps the standard logger with a fixed component tag, printed
// the same way the reference dashboard tags its own log lines
// ("[HTTP] ...", "[POWER] ...").
type Logger struct {
	*log.Logger
}

// New returns a Logger that prefixes every line with "[tag] ".
func New(tag string) *Logger {
	return &Logger{log.New(os.Stderr, "["+tag+"] ", log.LstdFlags)}
}

var (
	Panel   = New("panel")
	Metrics = New("metrics")
	Wan     = New("wan")
	Printer = New("printer")
	Render  = New("render")
	Main    = New("main")
	Debug   = New("debug")
)
