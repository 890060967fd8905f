package prefs

import (
	"fmt"
	"strings"

	"github.com/hardknott/shortbus/logger"
	"github.com/hardknott/shortbus/resources"
)

// the string that separates the tag from the value in the saved file
const keySep = " :: "

// Disk represents preference values that are loaded from and saved to disk.
type Disk struct {
	filename string

	// tags in the order they were added. a map alone would save/load in a
	// random order and the saved file should be stable between runs
	tags    []string
	entries map[string]entry
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// filename is relative to the resources path.
func NewDisk(filename string) *Disk {
	return &Disk{
		filename: filename,
		entries:  make(map[string]entry),
	}
}

// Add a preference value to the Disk instance under the supplied tag.
func (dsk *Disk) Add(tag string, e entry) error {
	if _, ok := dsk.entries[tag]; ok {
		return fmt.Errorf("prefs: tag already added to disk: %s", tag)
	}
	dsk.tags = append(dsk.tags, tag)
	dsk.entries[tag] = e
	return nil
}

// Load preference values from disk. A missing file is not an error. A value
// that is rejected by its setter hook is logged and skipped, leaving the
// preference at its previous value.
func (dsk *Disk) Load() error {
	content, err := resources.Read(dsk.filename)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}

		tag, value, ok := strings.Cut(line, keySep)
		if !ok {
			logger.Logf(logger.Allow, "prefs", "malformed line in %s: %s", dsk.filename, line)
			continue
		}

		e, ok := dsk.entries[tag]
		if !ok {
			// unrecognised tags are not an error. the file may be shared
			// with a newer or older version of the program
			continue
		}

		if err := e.fromString(value); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %s", tag, err)
		}
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	var b strings.Builder
	for _, tag := range dsk.tags {
		b.WriteString(tag)
		b.WriteString(keySep)
		b.WriteString(dsk.entries[tag].String())
		b.WriteString("\n")
	}

	if err := resources.Write(dsk.filename, b.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
