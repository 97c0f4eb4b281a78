package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Kategori", "Total Poin"},
		Rows: []map[string]string{
			{"Kategori": "Kerajinan & Pembiasaan", "Total Poin": "15"},
			{"Kategori": "Kelakuan, berat", "Total Poin": "5"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Kategori,Total Poin", lines[0])
	assert.Equal(t, "Kerajinan & Pembiasaan,15", lines[1])
	assert.Equal(t, `"Kelakuan, berat",5`, lines[2])
}

func TestCSVExporterOptions(t *testing.T) {
	out, err := NewCSVExporter(WithBOM(), WithComma(';')).Render(Dataset{
		Headers: []string{"Nama", "Poin"},
		Rows:    []map[string]string{{"Nama": "Budi"}},
	})
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, utf8BOM))
	assert.Equal(t, "Nama;Poin\nBudi;\n", string(out[len(utf8BOM):]))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(Report{
		Title:    "Rekap Pelanggaran",
		Subtitle: []string{"SMP Negeri 1"},
		Sections: []Section{
			{Heading: "Per Kategori", Data: Dataset{Headers: []string{"Kategori", "Total"}, Rows: []map[string]string{{"Kategori": "Kelakuan", "Total": "1"}}}},
			{Heading: "Per Kelas", Data: Dataset{Headers: []string{"Kelas", "Total"}}},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterValidatesSections(t *testing.T) {
	_, err := NewPDFExporter().Render(Report{Title: "empty"})
	assert.Error(t, err)

	_, err = NewPDFExporter().Render(Report{Sections: []Section{{Heading: "x"}}})
	assert.Error(t, err)
}
