// Package logger is the central log for the shortbus emulation. Log entries
// are collected in a single central location and can be echoed to an io.Writer
// as they arrive or recalled later with the Tail() function.
//
// Almost every function in the package takes a Permission instance as the
// first argument. The environment that is making the log request decides
// whether logging is allowed. The package level value Allow can be used when
// there is no environment to speak of and logging should always happen.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission indicates whether the environment making a log request allows
// the entry to be recorded.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission value to use when logging should always happen.
var Allow allow

// the maximum number of entries kept by the central logger. once the limit is
// reached the oldest half of the log is discarded
const maxEntries = 512

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry

	// the echo writer receives every new entry as it is logged
	echo io.Writer
}

var log = central{
	entries: make([]entry, 0, maxEntries),
}

func (c *central) add(tag string, detail string) {
	c.crit.Lock()
	defer c.crit.Unlock()

	// split multi-line details into separate entries. it keeps the log
	// output regular and easy to filter
	for _, d := range strings.Split(detail, "\n") {
		if d == "" {
			continue
		}

		e := entry{tag: tag, detail: d}

		if len(c.entries) >= maxEntries {
			c.entries = c.entries[maxEntries/2:]
		}
		c.entries = append(c.entries, e)

		if c.echo != nil {
			io.WriteString(c.echo, e.String())
			io.WriteString(c.echo, "\n")
		}
	}
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error or anything that satisfies the Stringer interface.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	switch d := detail.(type) {
	case string:
		log.add(tag, d)
	case error:
		log.add(tag, d.Error())
	case fmt.Stringer:
		log.add(tag, d.String())
	default:
		log.add(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, format string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	log.add(tag, fmt.Sprintf(format, args...))
}

// Tail writes the last n entries to the io.Writer. A value of -1 for n writes
// every entry in the log.
func Tail(w io.Writer, n int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	if n < 0 || n > len(log.entries) {
		n = len(log.entries)
	}

	for _, e := range log.entries[len(log.entries)-n:] {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}

// SetEcho to an io.Writer. Every entry logged from this point will be written
// to the writer as it arrives. If writeRecent is true then the current
// contents of the log is written immediately.
//
// A nil value for w stops any previous echoing.
func SetEcho(w io.Writer, writeRecent bool) {
	log.crit.Lock()
	log.echo = w
	log.crit.Unlock()

	if w != nil && writeRecent {
		Tail(w, -1)
	}
}

// Clear empties the central logger.
func Clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.entries = log.entries[:0]
}
