package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben1998pe/soap-country-info/internal/core/history"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")

	entries := []history.Entry{
		{
			ISOCode:     "PE",
			CountryName: "Peru",
			Timestamp:   time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ISOCode:     "ES",
			CountryName: "Spain",
			Timestamp:   time.Date(2024, 3, 15, 10, 31, 0, 0, time.UTC),
		},
	}

	require.NoError(t, Write(entries, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CODE")
	assert.Contains(t, lines[1], "PE")
	assert.Contains(t, lines[1], "Peru")
	assert.Contains(t, lines[2], "ES")
}

func TestWrite_EmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")

	require.NoError(t, Write(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TIME")
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o644))

	require.NoError(t, Write(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWrite_InvalidPath(t *testing.T) {
	// A directory in place of the target file makes the rename fail.
	dir := t.TempDir()
	path := filepath.Join(dir, "blocked")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := Write(nil, path)
	assert.Error(t, err)
}
