package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFragment_PlainProseBecomesParagraphs(t *testing.T) {
	got, err := RenderFragment("First paragraph.\n\nSecond paragraph.")
	require.NoError(t, err)
	assert.Contains(t, got, "<p>First paragraph.</p>")
	assert.Contains(t, got, "<p>Second paragraph.</p>")
}

func TestRender_StandalonePage(t *testing.T) {
	got, err := Render("My <Essay>", "One quiet paragraph.")
	require.NoError(t, err)
	assert.Contains(t, got, "<!doctype html>")
	assert.Contains(t, got, "<title>My &lt;Essay&gt;</title>")
	assert.Contains(t, got, "One quiet paragraph.")
}

func TestRender_DefaultTitle(t *testing.T) {
	got, err := Render("", "text")
	require.NoError(t, err)
	assert.Contains(t, got, "<title>Essay draft</title>")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.html")
	require.NoError(t, WriteFile(path, "Draft", "Some essay text."))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Some essay text.")
}
