package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/antchfx/xmlquery"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/domain"
)

var errMissingID = errors.New("descriptor has no Id")

// isDefinitionDir matches the 36-character UUID names the runtime gives
// process definition directories.
func isDefinitionDir(name string) bool {
	if len(name) != 36 {
		return false
	}
	_, err := uuid.Parse(name)
	return err == nil
}

// definitionDirs lists the identifier-named subdirectories of the
// definitions root, sorted by name.
func (l *Loader) definitionDirs() []string {
	root := l.paths.Definitions
	if !l.requireDir(diag.PhaseDefinitions, root, "processes directory") {
		return nil
	}
	entries, err := afero.ReadDir(l.fs, root)
	if err != nil {
		l.diag.Warn(diag.PhaseDefinitions, root, err)
		return nil
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() && isDefinitionDir(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	return ids
}

// Definitions parses the descriptor of every definition directory and returns
// them keyed by the identifier found in the descriptor.
func (l *Loader) Definitions() map[string]domain.ProcessInfo {
	ids := l.definitionDirs()
	slog.Info("loading process definitions", "dirs", len(ids))

	defs := make(map[string]domain.ProcessInfo, len(ids))
	for _, id := range ids {
		path := filepath.Join(l.paths.Definitions, id, id+".xml")
		info, err := l.readDescriptor(path)
		if errors.Is(err, fs.ErrNotExist) {
			l.diag.Warnf(diag.PhaseDefinitions, path, "descriptor not found for process %s", id)
			continue
		}
		if err != nil {
			l.diag.Warn(diag.PhaseDefinitions, path, err)
			continue
		}
		defs[info.ID] = info
	}
	slog.Info("loaded process definitions", "count", len(defs))
	return defs
}

// DefinitionSizes returns the total size of every definition directory,
// keyed by directory name.
func (l *Loader) DefinitionSizes() map[string]int64 {
	ids := l.definitionDirs()
	slog.Info("measuring process directories", "dirs", len(ids))

	sizes := make(map[string]int64, len(ids))
	for _, id := range ids {
		sizes[id] = l.scanner.Size(filepath.Join(l.paths.Definitions, id))
	}
	return sizes
}

func (l *Loader) readDescriptor(path string) (domain.ProcessInfo, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return domain.ProcessInfo{}, err
	}
	defer f.Close()
	return parseDescriptor(f)
}

func parseDescriptor(r io.Reader) (domain.ProcessInfo, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return domain.ProcessInfo{}, fmt.Errorf("parse descriptor: %w", err)
	}

	info := domain.ProcessInfo{
		ID:   findText(doc, "//Id"),
		Name: normalizeName(findText(doc, "//Name")),
		Type: findText(doc, "//Type"),
	}
	if folder := xmlquery.FindOne(doc, "//FolderId[@name]"); folder != nil {
		info.Folder = folder.SelectAttr("name")
	}
	if info.ID == "" {
		return domain.ProcessInfo{}, errMissingID
	}
	return info, nil
}
