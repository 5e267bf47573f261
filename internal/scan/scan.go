// Package scan sums on-disk sizes.
package scan

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/anomredux/boomi-du/internal/diag"
)

// Scanner computes byte totals over an afero filesystem.
type Scanner struct {
	fs   afero.Fs
	diag *diag.Collector
}

func New(fsys afero.Fs, d *diag.Collector) *Scanner {
	return &Scanner{fs: fsys, diag: d}
}

// Size returns the total size of all regular files under path: the file's own
// size when path is a file, 0 when it does not exist. Entries that cannot be
// read are reported to the collector and contribute nothing.
func (s *Scanner) Size(path string) int64 {
	info, err := s.fs.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.diag.Warn(diag.PhaseScan, path, err)
		}
		return 0
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() {
			return info.Size()
		}
		return 0
	}

	var total int64
	_ = afero.Walk(s.fs, path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			s.diag.Warn(diag.PhaseScan, p, err)
			return nil
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total
}
