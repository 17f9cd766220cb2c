// Package scratch stages uploaded files on local disk before they are sent
// to object storage. Every staged file gets a unique name, so concurrent
// uploads never share a path.
package scratch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// keepFile is the placeholder that keeps the directory in version control.
const keepFile = ".gitkeep"

// Dir is a scratch directory.
type Dir struct {
	path string
}

// New returns a Dir rooted at path, creating it if needed.
func New(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory path.
func (d *Dir) Path() string { return d.path }

// Save copies r into a new file named <prefix>-<uuid><ext> and returns its
// path with a cleanup func that removes it. Cleanup must run on every exit
// path of the caller; it is safe to call more than once.
func (d *Dir) Save(prefix, ext string, r io.Reader) (string, func(), error) {
	name := filepath.Join(d.path, prefix+"-"+uuid.NewString()+ext)
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("create scratch file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("path", name).Warn("scratch: remove failed")
		}
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close scratch file: %w", err)
	}
	return name, cleanup, nil
}

// Sweep removes every resident of the directory except the .gitkeep
// placeholder. Run it at startup, before any upload can be in flight,
// to clear files left behind by a crash.
func (d *Dir) Sweep() (int, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return 0, fmt.Errorf("read scratch dir: %w", err)
	}
	removed := 0
	for _, e := range entries {
		if e.Name() == keepFile {
			continue
		}
		if err := os.RemoveAll(filepath.Join(d.path, e.Name())); err != nil {
			return removed, fmt.Errorf("remove %q: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
