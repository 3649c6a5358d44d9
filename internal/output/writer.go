package output

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Writer persists named content.
type Writer interface {
	Write(name string, content []byte) error
}

// FS writes artifacts to the root of a billy filesystem.
type FS struct {
	fs billy.Filesystem
}

// NewFS creates a Writer on top of fs.
func NewFS(fs billy.Filesystem) *FS {
	return &FS{fs: fs}
}

// Write stores content as name, replacing any existing artifact. Names are
// flat; separators are rejected.
func (w *FS) Write(name string, content []byte) error {
	if name == "" || path.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	if err := util.WriteFile(w.fs, name, content, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.fs.Join(w.fs.Root(), name), err)
	}
	return nil
}

type discard struct{}

func (discard) Write(string, []byte) error { return nil }

// Discard drops everything written to it.
var Discard Writer = discard{}

// New returns a Writer storing artifacts under dir, or Discard when dir is
// empty. The directory is created on first write.
func New(dir string) Writer {
	if dir == "" {
		return Discard
	}
	return NewFS(osfs.New(dir))
}
