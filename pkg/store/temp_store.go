package store

import (
	"path/filepath"

	"src.ked.sh/pkg/must"
	"src.ked.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory. The
// store is closed and the directory removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st := must.OK1(NewStore(filepath.Join(dir, "db")))
	// Cleanups run in reverse order, so the store is closed before the
	// directory is removed.
	c.Cleanup(func() { must.OK(st.Close()) })
	return st
}
