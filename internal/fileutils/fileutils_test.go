package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ccs-extract/internal/fileutils"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "statement.pdf")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	// Test existing file
	assert.True(t, fileutils.FileExists(testFile))

	// Test non-existent file
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.pdf")))

	// Test directory (should return false)
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	// Test existing directory
	assert.True(t, fileutils.DirectoryExists(tmpDir))

	// Test non-existent directory
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	// Create a file and test (should return false)
	testFile := filepath.Join(tmpDir, "statement.pdf")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	// Test creating a new directory
	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	assert.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	// Test with existing directory (should not error)
	assert.NoError(t, fileutils.EnsureDirectoryExists(tmpDir))
}

func TestListFilesWithExtension(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"b.pdf", "a.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("test"), 0600))
	}

	// Matching files come back in lexical order
	files, err := fileutils.ListFilesWithExtension(tmpDir, ".pdf")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.pdf"),
		filepath.Join(tmpDir, "b.pdf"),
	}, files)

	// Test listing with no matches
	files, err = fileutils.ListFilesWithExtension(tmpDir, ".csv")
	assert.NoError(t, err)
	assert.Len(t, files, 0)

	// Test with non-existent directory
	_, err = fileutils.ListFilesWithExtension(filepath.Join(tmpDir, "nonexistent"), ".pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")
}

func TestListFilesWithExtension_CaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"lower.pdf", "SCANNED.PDF"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("test"), 0600))
	}

	files, err := fileutils.ListFilesWithExtension(tmpDir, ".pdf")
	assert.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestListFilesWithExtension_Nested(t *testing.T) {
	tmpDir := t.TempDir()

	nestedDir := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.MkdirAll(nestedDir, 0750))

	rootFile := filepath.Join(tmpDir, "root.pdf")
	nestedFile := filepath.Join(nestedDir, "inner.pdf")
	for _, f := range []string{rootFile, nestedFile} {
		require.NoError(t, os.WriteFile(f, []byte("test"), 0600))
	}

	// Should find both files
	files, err := fileutils.ListFilesWithExtension(tmpDir, ".pdf")
	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, nestedFile)
}
