package resources

import (
	"fmt"
	"os"
)

// Read the contents of the named resource file. A missing file is not an
// error and returns the empty string.
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}

	return string(b), nil
}

// Write replaces the contents of the named resource file.
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return err
	}

	if err := os.WriteFile(pth, []byte(content), 0600); err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	return nil
}
