package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"sharenotes/internal/domain/note"
)

// ExportController downloads a note rendered in a chosen format and
// persists it under the filename the service suggests. The export job is
// ephemeral: nothing is tracked once the file is written.
type ExportController struct {
	gw  *Gateway
	dir string
	log *slog.Logger
}

func NewExportController(gw *Gateway, dir string, log *slog.Logger) *ExportController {
	return &ExportController{gw: gw, dir: dir, log: log}
}

// Export downloads the note in the given format and writes it into the
// export directory. The filename comes from the response's
// Content-Disposition; when absent the name falls back to note.<format>.
// Returns the path written.
func (c *ExportController) Export(ctx context.Context, noteID int64, format string) (string, error) {
	t, err := note.ParseFileType(format)
	if err != nil {
		return "", err
	}

	data, filename, err := c.gw.DownloadNote(ctx, noteID, t)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = "note." + string(t)
	}
	// The filename is server-supplied; strip any path components.
	filename = filepath.Base(filename)

	path := filepath.Join(c.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not write export file: %w", err)
	}

	c.log.Debug("note exported", "noteId", noteID, "format", t, "path", path)
	return path, nil
}
