package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/boomi-du/internal/diag"
	"github.com/anomredux/boomi-du/internal/domain"
)

func definitionsFixture(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	root := testPaths.Definitions

	writeFile(t, fsys, filepath.Join(root, idInvoice, idInvoice+".xml"),
		descriptor(idInvoice, "Invoice Sync", "process", "Finance"))
	writeFile(t, fsys, filepath.Join(root, idInvoice, "shapes", "map.xml"), strings.Repeat("m", 300))

	writeFile(t, fsys, filepath.Join(root, idOrders, idOrders+".xml"),
		descriptor(idOrders, "Order Import", "process", "Sales"))

	writeFile(t, fsys, filepath.Join(root, idBroken, idBroken+".xml"), "this is <<not xml")
	writeFile(t, fsys, filepath.Join(root, "not-a-process", "x.xml"), "<x/>")
	writeFile(t, fsys, filepath.Join(root, "README.txt"), "ignore me")
	return fsys
}

func TestDefinitions(t *testing.T) {
	l, c := newTestLoader(definitionsFixture(t))

	defs := l.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, domain.ProcessInfo{ID: idInvoice, Name: "Invoice Sync", Type: "process", Folder: "Finance"}, defs[idInvoice])
	assert.Equal(t, "Order Import", defs[idOrders].Name)

	require.Equal(t, 1, c.Count(diag.PhaseDefinitions))
	assert.Contains(t, c.Warnings()[0].Path, idBroken)
}

func TestDefinitionSizes(t *testing.T) {
	l, _ := newTestLoader(definitionsFixture(t))

	sizes := l.DefinitionSizes()
	require.Len(t, sizes, 3)

	invoiceXML := int64(len(descriptor(idInvoice, "Invoice Sync", "process", "Finance")))
	assert.Equal(t, invoiceXML+300, sizes[idInvoice])
	assert.Equal(t, int64(len("this is <<not xml")), sizes[idBroken])
	assert.NotContains(t, sizes, "not-a-process")
}

func TestDefinitions_MissingDescriptor(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join(testPaths.Definitions, idOrders, "other.xml"), "<x/>")

	l, c := newTestLoader(fsys)
	assert.Empty(t, l.Definitions())
	require.Equal(t, 1, c.Count(diag.PhaseDefinitions))
	assert.Contains(t, c.Warnings()[0].Message, "descriptor not found")
}

func TestDefinitions_MissingRoot(t *testing.T) {
	l, c := newTestLoader(afero.NewMemMapFs())
	assert.Empty(t, l.Definitions())
	assert.Empty(t, l.DefinitionSizes())
	assert.Equal(t, 2, c.Count(diag.PhaseDefinitions))
}

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		want    domain.ProcessInfo
		wantErr bool
	}{
		{
			name: "nested fields",
			xml:  `<bns:Component xmlns:bns="urn:x"><Header><Id> P-1 </Id><Name>Nested</Name></Header><Type>process</Type></bns:Component>`,
			want: domain.ProcessInfo{ID: "P-1", Name: "Nested", Type: "process"},
		},
		{
			name: "folder without name attribute ignored",
			xml:  `<Component><Id>P-2</Id><Name>N</Name><FolderId>F</FolderId></Component>`,
			want: domain.ProcessInfo{ID: "P-2", Name: "N"},
		},
		{
			name: "decomposed name normalised",
			xml:  "<Component><Id>P-3</Id><Name>Cafe\u0301</Name></Component>",
			want: domain.ProcessInfo{ID: "P-3", Name: "Caf\u00e9"},
		},
		{name: "missing id", xml: `<Component><Name>N</Name></Component>`, wantErr: true},
		{name: "malformed", xml: `<Component><Id>P</Name></Component>`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDescriptor(strings.NewReader(tt.xml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDefinitionDir(t *testing.T) {
	assert.True(t, isDefinitionDir(idInvoice))
	assert.False(t, isDefinitionDir("not-a-process"))
	assert.False(t, isDefinitionDir("{"+idInvoice+"}"))
	assert.False(t, isDefinitionDir("zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"))
}
