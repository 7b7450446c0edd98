package analyses

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"resume-ai-backend/internal/shared/util"
)

// TempStore stages multipart uploads on local disk for the analysis pipeline.
type TempStore struct {
	Dir string
}

// NewTempStore ensures the upload directory exists.
func NewTempStore(dir string) (*TempStore, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &TempStore{Dir: dir}, nil
}

// Save writes the uploaded file under a uuid-prefixed sanitized name and
// returns the staged Upload.
func (t *TempStore) Save(header *multipart.FileHeader) (Upload, error) {
	src, err := header.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name, err := util.SanitizeFileName(header.Filename)
	if err != nil {
		name = "resume"
	}
	path := filepath.Join(t.Dir, uuid.NewString()+"-"+name)

	dst, err := os.Create(path)
	if err != nil {
		return Upload{}, fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return Upload{}, fmt.Errorf("write temp file: %w", err)
	}

	return Upload{
		Path:     path,
		MimeType: header.Header.Get("Content-Type"),
		Size:     size,
	}, nil
}
