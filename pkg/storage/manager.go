package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	errs "imgmirror/pkg/errors"
)

// DefaultDirPermissions is used for every directory the manager creates
const DefaultDirPermissions = 0755

// EnsureDir guarantees path exists as a directory, creating missing parents.
// Calling it on an existing directory is a no-op.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Manager writes downloaded images under a target directory
type Manager struct {
	outputDir string
}

// NewManager creates the target directory if needed and returns a manager for it
func NewManager(outputDir string) (*Manager, error) {
	if err := EnsureDir(outputDir); err != nil {
		return nil, err
	}

	return &Manager{outputDir: outputDir}, nil
}

// Path returns the destination path for filename
func (m *Manager) Path(filename string) string {
	return filepath.Join(m.outputDir, filename)
}

// Save writes the content of r to filename inside the target directory.
// An existing file with the same name is replaced. Nothing is left behind
// on failure.
func (m *Manager) Save(r io.Reader, filename string) (int64, error) {
	path := m.Path(filename)

	// Create temporary file first
	tempFile := path + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return 0, errs.New(errs.ErrorTypeWrite, "", "failed to create temporary file: %v", err)
	}

	written, err := io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		var typed *errs.Error
		if errors.As(err, &typed) {
			return 0, err
		}
		return 0, errs.New(errs.ErrorTypeWrite, "", "failed to write %s: %v", filename, err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return 0, errs.New(errs.ErrorTypeWrite, "", "failed to close file: %v", closeErr)
	}

	// Atomic rename
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return 0, errs.New(errs.ErrorTypeWrite, "", "failed to rename temporary file: %v", err)
	}

	return written, nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}
