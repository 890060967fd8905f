package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hardknott/shortbus/resources/fs"
)

// JoinPath prepends the supplied path elements with the OS and build specific
// base path, creating any directories needed along the way. The file at the
// end of the path is not touched or created.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)

	// the caller may already have supplied a fully formed resource path
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := fs.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

// basePath selects between the portable path and the path appropriate to how
// the program was compiled, as a release binary or a development binary.
func basePath() (string, error) {
	if checkPortable() {
		return portablePath, nil
	}
	return resourcePath()
}
