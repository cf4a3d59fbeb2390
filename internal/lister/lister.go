// lister enumerates the immediate entries of a directory under the asset root.
package lister

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("publicpath.lister")

var (
	// ErrDirectoryNotFound is returned when the target is missing or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrEntryVanished is returned when an entry disappears between the
	// directory read and its metadata query.
	ErrEntryVanished = errors.New("directory entry vanished")
)

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name string
	Kind Kind
}

// Lister reads directories from a file system rooted at the asset root.
type Lister struct {
	fsys fs.FS
}

func New(fsys fs.FS) *Lister {
	return &Lister{fsys: fsys}
}

// List returns the entries of rel in enumeration order. Every entry is
// classified with a Stat call so symlinks resolve to what they point at.
func (l *Lister) List(rel string) ([]Entry, error) {
	info, err := fs.Stat(l.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, rel)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", rel, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, rel)
	}

	dirEntries, err := fs.ReadDir(l.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, rel)
		}
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		info, err := fs.Stat(l.fsys, path.Join(rel, name))
		if err != nil {
			log.Warningf("stat %s/%s: %v", rel, name, err)
			return nil, fmt.Errorf("%w: %s: %w", ErrEntryVanished, path.Join(rel, name), err)
		}

		kind := KindFile
		if info.IsDir() {
			kind = KindDirectory
		}
		entries = append(entries, Entry{Name: name, Kind: kind})
	}

	log.Debugf("listed %d entries in %s", len(entries), rel)
	return entries, nil
}
