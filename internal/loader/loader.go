// Package loader reads the on-disk artifacts of an Atom: process definitions,
// execution history and shared container logs.
package loader

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/anomredux/boomi-du/internal/config"
	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/scan"
)

// Loader scans the roots named in its config. Every problem is reported to
// the diagnostics collector and the affected entry is skipped.
type Loader struct {
	fs      afero.Fs
	paths   config.PathsConfig
	scanner *scan.Scanner
	diag    *diag.Collector
}

func New(fsys afero.Fs, paths config.PathsConfig, d *diag.Collector) *Loader {
	return &Loader{
		fs:      fsys,
		paths:   paths,
		scanner: scan.New(fsys, d),
		diag:    d,
	}
}

// requireDir reports whether dir exists as a directory, warning otherwise.
func (l *Loader) requireDir(phase diag.Phase, dir, what string) bool {
	info, err := l.fs.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.diag.Warnf(phase, dir, "%s not found", what)
		return false
	case err != nil:
		l.diag.Warn(phase, dir, err)
		return false
	case !info.IsDir():
		l.diag.Warnf(phase, dir, "%s is not a directory", what)
		return false
	}
	return true
}
