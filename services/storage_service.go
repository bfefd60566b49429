package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// StorageService stores challenge attachments on local disk under a root
// directory. The engine never reads attachment contents; it only hands out
// paths for download.
type StorageService struct {
	root string
}

func NewStorageService(root string) *StorageService {
	return &StorageService{root: root}
}

// Save writes the uploaded file under a per-challenge directory and returns
// its path and file type (the lowercase extension).
func (s *StorageService) Save(challengeID uint, file *multipart.FileHeader) (string, string, error) {
	filename := sanitizeFilename(file.Filename)
	if filename == "" {
		return "", "", fmt.Errorf("invalid file name %q", file.Filename)
	}

	dir := filepath.Join(s.root, fmt.Sprintf("challenge_%d", challengeID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("write file: %w", err)
	}

	fileType := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return path, fileType, nil
}

// Exists reports whether the stored file is still present on disk
func (s *StorageService) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Remove deletes a stored file, refusing paths outside the storage root
func (s *StorageService) Remove(path string) error {
	if path == "" {
		return nil
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %q is outside the storage root", path)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// sanitizeFilename strips any directory components from an uploaded name
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
