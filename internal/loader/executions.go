package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/spf13/afero"

	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/domain"
)

const (
	historyDir      = "history"
	runDirPrefix    = "execution-"
	processLogName  = "process_log.xml"
	executingPrefix = "Executing Process "
)

// executionDirs finds run directories anywhere below <root>/history. Run
// directories are not searched for nested runs.
func (l *Loader) executionDirs() []string {
	root := l.paths.Executions
	if !l.requireDir(diag.PhaseExecutions, root, "execution directory") {
		return nil
	}
	history := filepath.Join(root, historyDir)
	if !l.requireDir(diag.PhaseExecutions, history, "execution history directory") {
		return nil
	}

	var dirs []string
	_ = afero.Walk(l.fs, history, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			l.diag.Warn(diag.PhaseExecutions, path, err)
			return nil
		}
		if info.IsDir() && path != history && strings.HasPrefix(info.Name(), runDirPrefix) {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	return dirs
}

// Executions returns one record per run whose process log names the executed
// process. Runs without a log or without a recognisable name are dropped.
func (l *Loader) Executions() []domain.ExecutionRecord {
	dirs := l.executionDirs()
	slog.Info("analyzing execution history", "dirs", len(dirs))

	records := make([]domain.ExecutionRecord, 0, len(dirs))
	for _, dir := range dirs {
		rec, ok := l.readExecution(dir)
		if ok {
			records = append(records, rec)
		}
	}
	slog.Info("loaded executions", "count", len(records), "skipped", len(dirs)-len(records))
	return records
}

func (l *Loader) readExecution(dir string) (domain.ExecutionRecord, bool) {
	path := filepath.Join(dir, processLogName)
	name, ts, err := l.readProcessLog(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no process log", "dir", dir)
		return domain.ExecutionRecord{}, false
	}
	if err != nil {
		l.diag.Warn(diag.PhaseExecutions, path, err)
		return domain.ExecutionRecord{}, false
	}
	if name == "" {
		slog.Debug("process log names no process", "path", path)
		return domain.ExecutionRecord{}, false
	}

	return domain.ExecutionRecord{
		ID:          filepath.Base(dir),
		ProcessName: name,
		SizeBytes:   l.scanner.Size(dir),
		Timestamp:   ts,
	}, true
}

func (l *Loader) readProcessLog(path string) (string, *time.Time, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	return parseProcessLog(f)
}

// parseProcessLog extracts the executed process name from the first LogEvent
// message starting with executingPrefix, and the run time from the first
// LogEvent carrying a time attribute.
func parseProcessLog(r io.Reader) (string, *time.Time, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return "", nil, fmt.Errorf("parse process log: %w", err)
	}

	var (
		name    string
		ts      *time.Time
		timeSet bool
	)
	for _, ev := range xmlquery.Find(doc, "//LogEvent") {
		if !timeSet {
			if attr := ev.SelectAttr("time"); attr != "" {
				timeSet = true
				if t, ok := parseTimestamp(attr); ok {
					ts = &t
				}
			}
		}
		if name == "" {
			msg := strings.TrimSpace(findText(ev, "Message"))
			if rest, ok := strings.CutPrefix(msg, executingPrefix); ok {
				name = normalizeName(rest)
			}
		}
		if name != "" && timeSet {
			break
		}
	}
	return name, ts, nil
}
