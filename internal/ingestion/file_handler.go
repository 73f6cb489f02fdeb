package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileHandler manages the uploads directory for resume documents.
type FileHandler struct {
	uploadsDir string
}

// NewFileHandler creates a new file handler rooted at uploadsDir.
func NewFileHandler(uploadsDir string) *FileHandler {
	return &FileHandler{
		uploadsDir: uploadsDir,
	}
}

// SaveUpload stores an uploaded file under a collision-free name and returns
// its path. Path components in the client-supplied filename are stripped.
func (fh *FileHandler) SaveUpload(filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(fh.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}

	filePath := filepath.Join(fh.uploadsDir, uuid.NewString()+"_"+name)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

// ListResumes returns the paths of all PDF files currently in the uploads
// directory. A missing directory yields an empty list.
func (fh *FileHandler) ListResumes() ([]string, error) {
	files, err := os.ReadDir(fh.uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read uploads directory: %w", err)
	}

	var paths []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(file.Name())) != ".pdf" {
			continue
		}
		paths = append(paths, filepath.Join(fh.uploadsDir, file.Name()))
	}

	return paths, nil
}

// Clear removes all files from the uploads directory.
func (fh *FileHandler) Clear() error {
	if err := os.RemoveAll(fh.uploadsDir); err != nil {
		return fmt.Errorf("failed to clear uploads directory: %w", err)
	}
	return os.MkdirAll(fh.uploadsDir, 0755)
}
