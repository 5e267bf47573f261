package loader

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/boomi-du/internal/config"
	"github.com/anomredux/boomi-du/internal/diag"
)

const (
	idInvoice = "0b5a7a8e-1c1f-4a4e-9f3e-2d2b6e8f9a01"
	idOrders  = "7c9d1e2f-3a4b-4c5d-8e6f-a1b2c3d4e5f6"
	idBroken  = "11111111-2222-4333-8444-555555555555"
)

var testPaths = config.PathsConfig{
	Definitions: "/atom/processes",
	Executions:  "/atom/execution",
	Logs:        "/atom/logs",
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func descriptor(id, name, typ, folder string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<Component>
  <Id>` + id + `</Id>
  <Name>` + name + `</Name>
  <Type>` + typ + `</Type>
  <FolderId name="` + folder + `">F-1</FolderId>
</Component>`
}

func processLog(name, time string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<ProcessLog>
  <LogEvent level="INFO" time="` + time + `"><Message>Starting run</Message></LogEvent>
  <LogEvent level="INFO"><Message>Executing Process ` + name + `</Message></LogEvent>
  <LogEvent level="INFO"><Message>Executing Process Something Else</Message></LogEvent>
</ProcessLog>`
}

func newTestLoader(fsys afero.Fs) (*Loader, *diag.Collector) {
	c := diag.New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	return New(fsys, testPaths, c), c
}
