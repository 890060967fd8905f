//go:build !release
// +build !release

package resources

const configDir = ".shortbus"

func resourcePath() (string, error) {
	return configDir, nil
}
