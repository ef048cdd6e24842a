package vcfio

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dlstool/vcf/vcferr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "police.xml")

	require.NoError(t, WriteFile(path, []byte("<CONFIG/>"), 0o644))
	b, err := ReadFile(path)
	require.NoError(t, err)
	a.Equal("<CONFIG/>", string(b))

	require.NoError(t, WriteFile(path, []byte("<Model/>"), 0o600))
	b, err = ReadFile(path)
	require.NoError(t, err)
	a.Equal("<Model/>", string(b))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	a.Equal(fs.FileMode(0o600), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	a.Len(entries, 1, "temporary files left behind")
}

func TestWriteFileFailure(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "police.xml")

	err := WriteFile(path, []byte("<CONFIG/>"), 0o644)
	e, ok := vcferr.IsWriteError(err)
	require.True(t, ok, "got %v", err)
	a.Equal(path, e.Path)
	a.ErrorIs(err, fs.ErrNotExist)

	// the destination is a directory: rename fails, nothing else is touched
	target := filepath.Join(dir, "out.xml")
	require.NoError(t, os.Mkdir(target, 0o755))
	err = WriteFile(target, []byte("<CONFIG/>"), 0o644)
	_, ok = vcferr.IsWriteError(err)
	a.True(ok)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	a.Len(entries, 1)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.xml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
