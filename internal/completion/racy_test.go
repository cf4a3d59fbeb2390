package completion_test

import (
	"io/fs"
	"testing/fstest"
)

type racyFS struct {
	fstest.MapFS
	vanish string
}

func (r racyFS) Stat(name string) (fs.FileInfo, error) {
	if name == r.vanish {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return r.MapFS.Stat(name)
}
