package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
)

// Writer replaces the output document on disk.
type Writer interface {
	Write(doc domain.Document) error
	Path() string
}

type FileWriter struct {
	path string
}

func New(cfg *config.Config) *FileWriter {
	return NewFileWriter(cfg.Scraper.OutputPath)
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

var _ Writer = (*FileWriter)(nil)

func (w *FileWriter) Path() string {
	return w.path
}

// Write encodes doc into a temporary file next to the target and renames it
// into place, so readers never see a half written document.
func (w *FileWriter) Write(doc domain.Document) error {
	if doc.Images == nil {
		doc.Images = []domain.ImageRecord{}
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encode document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replace %s: %w", w.path, err)
	}
	return nil
}
