package jdsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	in := "  Senior Frontend Developer \r\n\r\n\tLocation:   Berlin\n\n  React,   TypeScript  "
	assert.Equal(t, "Senior Frontend Developer\nLocation: Berlin\nReact, TypeScript", NormalizeText(in))
	assert.Equal(t, "", NormalizeText(" \n\t\n"))
}

func TestFromFile_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend Engineer\n\nGo, PostgreSQL\n"), 0o600))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nGo, PostgreSQL", text)
}

func TestFromBytes_Errors(t *testing.T) {
	_, err := FromBytes("jd.rtf", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FromBytes("jd.txt", []byte("   \n  "))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = FromBytes("jd.pdf", []byte("not a pdf"))
	assert.Error(t, err)

	_, err = FromBytes("jd.docx", []byte("not a zip"))
	assert.Error(t, err)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocxContentToText(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Cloud Engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>AWS</w:t></w:r><w:r><w:tab/><w:t>Docker &amp; Kubernetes</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, "Cloud Engineer\nAWS Docker & Kubernetes", NormalizeText(docxContentToText(content)))
}
