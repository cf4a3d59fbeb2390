// resolver maps root-relative attribute values onto directories under the
// public asset root.
package resolver

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// RootMarker is the prefix every completable value must start with.
const RootMarker = "/"

var (
	// ErrNotRootRelative is returned for values that do not start with RootMarker.
	ErrNotRootRelative = errors.New("path is not root relative")

	// ErrOutsideRoot is returned when ".." segments climb above the asset root.
	ErrOutsideRoot = errors.New("path escapes the asset root")
)

// Target is the directory whose entries complete a partial path.
type Target struct {
	// Rel is slash separated and relative to the asset root, "." for the root.
	Rel string
	// Abs is the directory on disk.
	Abs string
}

// Resolver is bound to one asset root for its whole lifetime.
type Resolver struct {
	root string
}

func New(assetRoot string) Resolver {
	return Resolver{root: filepath.Clean(assetRoot)}
}

func (r Resolver) Root() string {
	return r.root
}

// Resolve drops the segment still being typed from partial and returns the
// directory holding its candidates. "/" resolves to the asset root itself.
func (r Resolver) Resolve(partial string) (Target, error) {
	if !strings.HasPrefix(partial, RootMarker) {
		return Target{}, fmt.Errorf("%w: %q", ErrNotRootRelative, partial)
	}

	parts := strings.Split(strings.TrimPrefix(partial, RootMarker), "/")
	parts = parts[:len(parts)-1]

	rel := path.Join(parts...)
	if rel == "" {
		rel = "."
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return Target{}, fmt.Errorf("%w: %q", ErrOutsideRoot, partial)
	}

	return Target{
		Rel: rel,
		Abs: filepath.Join(r.root, filepath.FromSlash(rel)),
	}, nil
}
