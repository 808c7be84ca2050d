package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage persists uploaded files and returns relative path handles that are
// resolvable under a public-servable root.
type Storage interface {
	Store(file *multipart.FileHeader) (string, error)
	Delete(path string) error
}

// DiskStorage writes uploads under root/images with generated names.
type DiskStorage struct {
	root string
}

// NewDiskStorage creates a disk storage rooted at dir.
func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{root: dir}
}

// Store copies the uploaded file to disk and returns its relative path handle.
func (s *DiskStorage) Store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	relPath := filepath.Join("images", name)

	if err := os.MkdirAll(filepath.Join(s.root, "images"), 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *DiskStorage) Delete(path string) error {
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
