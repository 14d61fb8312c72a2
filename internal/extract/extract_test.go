package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eps-group/leadgen-cli/internal/model"
)

func TestTagSource(t *testing.T) {
	rows := []model.RawRow{
		{"company": "Acme"},
		{"company": "Beta", "notes": "existing"},
	}
	out := TagSource(rows, "crm_export")
	assert.Equal(t, "source=crm_export", out[0]["notes"])
	assert.Equal(t, "existing | source=crm_export", out[1]["notes"])
}

func TestTagSource_EmptyLabel(t *testing.T) {
	rows := []model.RawRow{{"notes": "keep"}}
	out := TagSource(rows, "")
	assert.Equal(t, "keep", out[0]["notes"])
}

func TestFromFile_DispatchCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte("company,email\nAcme,a@acme.com\n"), 0o644))

	rows, err := FromFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["company"])
}

func TestFromFile_DispatchHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><div class="card">Acme</div></body></html>`), 0o644))

	rows, err := FromFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "India", rows[0]["country"])
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	_, err := FromFile("leads.docx")
	assert.Error(t, err)
}
