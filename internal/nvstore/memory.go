// internal/nvstore/memory.go
package nvstore

import (
	"errors"
	"fmt"
)

// Memory is an in-process Backing. Contents are lost with the process.
type Memory struct {
	image   []byte
	size    int
	commits int
}

// NewMemory returns a Memory whose initial contents are data
// followed by erased cells.
func NewMemory(data []byte) *Memory {
	return &Memory{image: append([]byte(nil), data...)}
}

func (m *Memory) Begin(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("nvstore memory: invalid size %d", size)
	}
	m.size = size
	m.image = erasedImage(size, m.image)
	return append([]byte(nil), m.image...), nil
}

func (m *Memory) Commit(image []byte) error {
	if m.size == 0 {
		return errors.New("nvstore memory: commit before begin")
	}
	if len(image) != m.size {
		return fmt.Errorf("nvstore memory: image size mismatch: got=%d want=%d", len(image), m.size)
	}
	m.image = append(m.image[:0], image...)
	m.commits++
	return nil
}

// Image returns a copy of the persisted bytes.
func (m *Memory) Image() []byte {
	return append([]byte(nil), m.image...)
}

// Commits returns how many commits succeeded.
func (m *Memory) Commits() int {
	return m.commits
}
