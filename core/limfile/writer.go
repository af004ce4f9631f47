package limfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const limDirName = "lims"

// File points at a written limit file. Files are written once, consumed
// exactly once by the importer and then left on disk as an audit trail.
type File struct {
	Path string
	Name string
}

// Writer serializes limit records into the lims directory under a
// working root.
type Writer struct {
	root string
	now  func() time.Time
}

// NewWriter creates a writer rooted at dir (the process working
// directory in production).
func NewWriter(dir string) *Writer {
	return &Writer{root: dir, now: time.Now}
}

// WriteLimFile writes the given lines as a timestamp-named .lim file
// with a trailing newline. Timestamp resolution is whole seconds, so a
// counter suffix disambiguates same-second calls; the file is created
// with O_EXCL so two concurrent writers can never share a name.
func (w *Writer) WriteLimFile(lines []string, prefix string) (*File, error) {
	limDir := filepath.Join(w.root, limDirName)
	if err := os.MkdirAll(limDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lim directory: %w", err)
	}

	stamp := w.now().Format("20060102-150405")
	payload := strings.Join(lines, "\n") + "\n"

	name := fmt.Sprintf("%s-%s.lim", prefix, stamp)
	for counter := 1; ; counter++ {
		path := filepath.Join(limDir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			if _, werr := f.WriteString(payload); werr != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write lim file: %w", werr)
			}
			if cerr := f.Close(); cerr != nil {
				return nil, fmt.Errorf("failed to close lim file: %w", cerr)
			}
			return &File{Path: path, Name: name}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lim file: %w", err)
		}
		name = fmt.Sprintf("%s-%s-%d.lim", prefix, stamp, counter)
	}
}
