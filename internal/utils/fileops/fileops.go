// Package fileops centralizes the file access the generator performs: path
// cleaning, schema reads, and destination writes.
package fileops

import (
	"os"
	"path/filepath"

	"github.com/achuchra/ts-types-from-strapi/internal/errors"
	"github.com/achuchra/ts-types-from-strapi/internal/models"
)

// FileOps provides a unified interface for the generator's file operations
type FileOps struct{}

// NewFileOps creates a new FileOps instance
func NewFileOps() *FileOps {
	return &FileOps{}
}

// ReadSource reads the schema declaration file. A missing file is reported
// as ErrSourceNotFound so callers can distinguish it from read failures.
func (fo *FileOps) ReadSource(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	if _, err := os.Stat(cleanPath); err != nil {
		if os.IsNotExist(err) {
			return "", &models.GeneratorError{
				Type:    models.ErrorTypeInput,
				File:    cleanPath,
				Message: "source file not found",
				Cause:   errors.ErrSourceNotFound,
			}
		}
		return "", errors.WrapFileSystemError("stat", cleanPath, err)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", errors.WrapFileSystemError("read", cleanPath, err)
	}
	return string(data), nil
}

// ReadGenerated reads the current destination contents. Existence is
// reported separately so staleness checks can treat a missing file as
// stale rather than failed.
func (fo *FileOps) ReadGenerated(path string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.WrapFileSystemError("read", path, err)
	}
	return string(data), true, nil
}

// WriteGenerated writes the generated declarations, creating parent
// directories as needed.
func (fo *FileOps) WriteGenerated(path string, content []byte) error {
	cleanPath := filepath.Clean(path)

	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapFileSystemError("create directory", cleanPath, err)
		}
	}

	if err := os.WriteFile(cleanPath, content, 0644); err != nil {
		return errors.WrapFileSystemError("write", cleanPath, err)
	}
	return nil
}
