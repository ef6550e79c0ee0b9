package note

import "fmt"

// FileType is a note export format accepted by the download endpoint.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

func (t FileType) Valid() bool {
	switch t {
	case FileTypePDF, FileTypeDOCX, FileTypeTXT:
		return true
	}
	return false
}

// ParseFileType validates a user-supplied format string.
func ParseFileType(s string) (FileType, error) {
	t := FileType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrBadFileType, s)
	}
	return t, nil
}
