package measure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("timestamp,power\n"), 0o644))
	return path
}

func TestExpandInputs_FilesAndDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.csv")
	touch(t, dir, "a.CSV") // extension match is case-insensitive
	touch(t, dir, "notes.txt")
	single := touch(t, dir, "z.csv")

	paths, problems := ExpandInputs([]string{dir, single})
	require.Empty(t, problems)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.CSV"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "z.csv"),
		single, // listed via the directory and as an explicit file
	}, paths)
}

func TestExpandInputs_DirectoryWithoutCSV(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	paths, problems := ExpandInputs([]string{dir})
	assert.Empty(t, paths)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], ErrNoCSVFiles)
}

func TestExpandInputs_MissingPath(t *testing.T) {
	dir := t.TempDir()
	good := touch(t, dir, "ok.csv")

	paths, problems := ExpandInputs([]string{filepath.Join(dir, "missing.csv"), good})
	assert.Equal(t, []string{good}, paths)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], os.ErrNotExist)
}

func TestExpandInputs_NestedDirIgnored(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.csv")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, sub, "nested.csv")

	paths, problems := ExpandInputs([]string{dir})
	require.Empty(t, problems)
	assert.Equal(t, []string{filepath.Join(dir, "top.csv")}, paths)
}
