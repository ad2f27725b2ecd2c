package imageio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/rectfit"
)

// DefaultPattern names snapshot files by zero-padded index.
const DefaultPattern = "frame-%05d.png"

// SnapshotWriter writes numbered canvas snapshots into a directory.
// It implements rectfit.SnapshotWriter.
type SnapshotWriter struct {
	dir     string
	pattern string
	caption bool
}

// SnapshotOption configures a SnapshotWriter.
type SnapshotOption func(*SnapshotWriter)

// WithPattern sets the fmt pattern used to name files from the index.
// The extension selects PNG or JPEG encoding.
func WithPattern(pattern string) SnapshotOption {
	return func(w *SnapshotWriter) {
		w.pattern = pattern
	}
}

// WithCaption draws the snapshot index onto every frame.
func WithCaption(on bool) SnapshotOption {
	return func(w *SnapshotWriter) {
		w.caption = on
	}
}

// NewSnapshotWriter creates dir if needed and returns a writer into it.
func NewSnapshotWriter(dir string, opts ...SnapshotOption) (*SnapshotWriter, error) {
	if err := os.MkdirAll(filepath.Clean(dir), 0o755); err != nil {
		return nil, fmt.Errorf("imageio: create snapshot dir: %w", err)
	}
	w := &SnapshotWriter{dir: dir, pattern: DefaultPattern}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the file path used for index.
func (w *SnapshotWriter) Path(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf(w.pattern, index))
}

// WriteSnapshot saves p under the path for index.
func (w *SnapshotWriter) WriteSnapshot(index int, p *rectfit.Pixmap) error {
	if w.caption {
		p = Caption(p, fmt.Sprintf("#%d", index))
	}
	if err := Save(p, w.Path(index)); err != nil {
		return fmt.Errorf("imageio: snapshot %d: %w", index, err)
	}
	return nil
}
