package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Write(t *testing.T) {
	fs := memfs.New()
	w := NewFS(fs)

	require.NoError(t, w.Write("summary.yaml", []byte("discovered: 3\n")))
	require.NoError(t, w.Write("summary.yaml", []byte("discovered: 4\n")))

	data, err := util.ReadFile(fs, "summary.yaml")
	require.NoError(t, err)
	assert.Equal(t, "discovered: 4\n", string(data))
}

func TestFS_WriteRejectsNestedNames(t *testing.T) {
	w := NewFS(memfs.New())

	for _, name := range []string{"", ".", "..", "../escape.yaml", "nested/summary.yaml"} {
		err := w.Write(name, []byte("x"))
		assert.Error(t, err, name)
	}
}

func TestNew_DirectoryCreatedOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "run-1")

	w := New(dir)
	require.NoError(t, w.Write("metrics.prom", []byte("sfproc_run_objects_discovered_total 1\n")))

	data, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
	require.NoError(t, err)
	assert.Equal(t, "sfproc_run_objects_discovered_total 1\n", string(data))
}

func TestNew_EmptyDirDiscards(t *testing.T) {
	w := New("")
	assert.Equal(t, Discard, w)
	assert.NoError(t, w.Write("summary.yaml", []byte("x")))
}
