package client

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharenotes/internal/domain/note"
)

func exportRouter(disposition string, body []byte) chi.Router {
	r := chi.NewRouter()
	r.Get("/notes/{id}/download", func(w http.ResponseWriter, req *http.Request) {
		if disposition != "" {
			w.Header().Set("Content-Disposition", disposition)
		}
		w.Write(body)
	})
	return r
}

func TestExportUsesServerFilename(t *testing.T) {
	gw, _ := newTestClient(t, exportRouter(`attachment; filename="note_Homework_2024-05-01.pdf"`, []byte("%PDF-fake")))
	dir := t.TempDir()
	ctrl := NewExportController(gw, dir, testLogger())

	path, err := ctrl.Export(context.Background(), 1, "pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "note_Homework_2024-05-01.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
}

func TestExportFilenameFallback(t *testing.T) {
	gw, _ := newTestClient(t, exportRouter("", []byte("plain body")))
	dir := t.TempDir()
	ctrl := NewExportController(gw, dir, testLogger())

	path, err := ctrl.Export(context.Background(), 1, "pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "note.pdf"), path)
}

func TestExportStripsPathComponents(t *testing.T) {
	gw, _ := newTestClient(t, exportRouter(`attachment; filename="../../escape.txt"`, []byte("x")))
	dir := t.TempDir()
	ctrl := NewExportController(gw, dir, testLogger())

	path, err := ctrl.Export(context.Background(), 1, "txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	gw, _ := newTestClient(t, exportRouter("", nil))
	ctrl := NewExportController(gw, t.TempDir(), testLogger())

	_, err := ctrl.Export(context.Background(), 1, "xlsx")
	assert.ErrorIs(t, err, note.ErrBadFileType)
}

func TestExportSurfacesDownloadError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notes/{id}/download", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No note with such id"}`))
	})

	gw, _ := newTestClient(t, r)
	ctrl := NewExportController(gw, t.TempDir(), testLogger())

	_, err := ctrl.Export(context.Background(), 42, "txt")
	assert.ErrorIs(t, err, note.ErrNotFound)
}
