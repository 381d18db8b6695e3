// internal/nvstore/nvstore_test.go
package nvstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/greenhouse-settings/internal/config"
)

// ---- memory ----

func TestMemory_FreshIsErased(t *testing.T) {
	m := NewMemory(nil)

	img, err := m.Begin(16)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{Erased}, 16), img)
}

func TestMemory_CommitPersistsAndCounts(t *testing.T) {
	m := NewMemory([]byte{1, 2})

	img, err := m.Begin(4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, Erased, Erased}, img)

	// Returned image is a copy.
	img[0] = 9
	require.Equal(t, byte(1), m.Image()[0])

	require.NoError(t, m.Commit([]byte{4, 3, 2, 1}))
	require.Equal(t, 1, m.Commits())
	require.Equal(t, []byte{4, 3, 2, 1}, m.Image())

	again, err := m.Begin(4)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 3, 2, 1}, again)
}

func TestMemory_CommitChecks(t *testing.T) {
	m := NewMemory(nil)
	require.Error(t, m.Commit([]byte{1}), "commit before begin")

	_, err := m.Begin(2)
	require.NoError(t, err)
	require.Error(t, m.Commit([]byte{1, 2, 3}))
	require.Equal(t, 0, m.Commits())

	_, err = m.Begin(0)
	require.Error(t, err)
}

// ---- file ----

func TestFile_MissingFileReadsErased(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "eeprom.bin"))

	img, err := f.Begin(8)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{Erased}, 8), img)
}

func TestFile_ShortFileIsPadded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")
	require.NoError(t, os.WriteFile(path, []byte{7, 7}, 0o600))

	img, err := NewFile(path).Begin(4)
	require.NoError(t, err)
	require.Equal(t, []byte{7, 7, Erased, Erased}, img)
}

func TestFile_CommitRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eeprom.bin")

	f := NewFile(path)
	_, err := f.Begin(4)
	require.NoError(t, err)
	require.NoError(t, f.Commit([]byte{1, 2, 3, 4}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, raw)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	img, err := NewFile(path).Begin(4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, img)
}

func TestFile_CommitChecks(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "eeprom.bin"))
	require.Error(t, f.Commit([]byte{1}))

	_, err := f.Begin(2)
	require.NoError(t, err)
	require.Error(t, f.Commit([]byte{1}))
}

func TestFile_MissingDirectoryFailsCommit(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope", "eeprom.bin"))
	_, err := f.Begin(2)
	require.NoError(t, err)
	require.Error(t, f.Commit([]byte{1, 2}))
}

// ---- builder ----

func TestBuild_FileAndMemory(t *testing.T) {
	b, closeFn, err := Build(cfg.StoreConfig{Kind: cfg.StoreFile, Path: filepath.Join(t.TempDir(), "e.bin")})
	require.NoError(t, err)
	require.IsType(t, &File{}, b)
	require.NoError(t, closeFn())

	b, closeFn, err = Build(cfg.StoreConfig{Kind: cfg.StoreMemory})
	require.NoError(t, err)
	require.IsType(t, &Memory{}, b)
	require.NoError(t, closeFn())

	_, _, err = Build(cfg.StoreConfig{Kind: "tape"})
	require.Error(t, err)
}
