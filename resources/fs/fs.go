// Package fs wraps the small number of filesystem operations needed by the
// resources package.
package fs

import (
	"io/fs"
	"os"
)

// MkdirAll creates the named directory along with any necessary parents. A nil
// error is returned if the directory already exists.
func MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
