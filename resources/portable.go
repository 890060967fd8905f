package resources

import (
	"os"
	"path/filepath"
)

// the directory used for resources when the program is running in portable
// mode
const portablePath = "shortbus_UserData"

// portable mode is enabled by the presence of an empty file named
// portable.txt in the same directory as the program binary
func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	p := filepath.Join(filepath.Dir(exe), "portable.txt")
	if _, err := os.Stat(p); err != nil {
		return false
	}

	return true
}
