// Package diag collects the non-fatal problems hit while scanning so they can
// be reported alongside results instead of aborting the run.
package diag

import (
	"fmt"
	"log/slog"
)

// Phase names the stage a warning was raised in.
type Phase string

const (
	PhaseScan        Phase = "scan"
	PhaseDefinitions Phase = "definitions"
	PhaseExecutions  Phase = "executions"
	PhaseLogs        Phase = "logs"
)

type Warning struct {
	Phase   Phase
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return fmt.Sprintf("%s: %s", w.Phase, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Phase, w.Path, w.Message)
}

// Collector records warnings and mirrors each one to a slog.Logger.
// A nil *Collector is valid and only logs.
type Collector struct {
	logger   *slog.Logger
	warnings []Warning
}

func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Warn records a problem with path during phase.
func (c *Collector) Warn(phase Phase, path string, err error) {
	c.Warnf(phase, path, "%v", err)
}

func (c *Collector) Warnf(phase Phase, path, format string, args ...any) {
	w := Warning{Phase: phase, Path: path, Message: fmt.Sprintf(format, args...)}
	logger := slog.Default()
	if c != nil {
		c.warnings = append(c.warnings, w)
		logger = c.logger
	}
	logger.Warn(w.Message, "phase", string(phase), "path", path)
}

// Warnings returns a copy of everything recorded so far.
func (c *Collector) Warnings() []Warning {
	if c == nil {
		return nil
	}
	return append([]Warning(nil), c.warnings...)
}

// Count returns the number of warnings raised during phase.
func (c *Collector) Count(phase Phase) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, w := range c.warnings {
		if w.Phase == phase {
			n++
		}
	}
	return n
}

func (c *Collector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.warnings)
}
