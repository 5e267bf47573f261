package loader

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/domain"
)

const containerLogPattern = "*.container.log"

// SharedLogs sums the container log files directly under the logs root.
func (l *Loader) SharedLogs() domain.LogUsage {
	root := l.paths.Logs
	if !l.requireDir(diag.PhaseLogs, root, "logs directory") {
		return domain.LogUsage{}
	}
	matches, err := afero.Glob(l.fs, filepath.Join(root, containerLogPattern))
	if err != nil {
		l.diag.Warn(diag.PhaseLogs, root, err)
		return domain.LogUsage{}
	}

	var usage domain.LogUsage
	for _, path := range matches {
		usage.Files++
		usage.SizeBytes += l.scanner.Size(path)
	}
	slog.Info("measured container logs", "files", usage.Files, "bytes", usage.SizeBytes)
	return usage
}
