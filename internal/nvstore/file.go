// internal/nvstore/file.go
package nvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a Backing kept in an EEPROM image file.
// A missing or short file reads as erased cells.
type File struct {
	path string
	size int
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Begin(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("nvstore file: invalid size %d", size)
	}

	data, err := os.ReadFile(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("nvstore file: read %s: %w", f.path, err)
	}
	if len(data) > size {
		data = data[:size]
	}

	f.size = size
	return erasedImage(size, data), nil
}

// Commit writes image to a temp file in the same directory, syncs it,
// then renames it over the image file.
func (f *File) Commit(image []byte) error {
	if f.size == 0 {
		return errors.New("nvstore file: commit before begin")
	}
	if len(image) != f.size {
		return fmt.Errorf("nvstore file: image size mismatch: got=%d want=%d", len(image), f.size)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".eeprom-*")
	if err != nil {
		return fmt.Errorf("nvstore file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("nvstore file: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("nvstore file: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("nvstore file: close: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("nvstore file: rename: %w", err)
	}

	// Persist the rename itself (best effort; not supported everywhere).
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}
