package audio

import "sync"

// Buffer is an io.Reader implementation that forwards generated sample data
// to something that can play it back (or store it, etc.)
type Buffer struct {
	au   *Audio
	crit sync.Mutex
	data []uint8
}

// Buffer returns an io.Reader for the mixed output of the subsystem. The
// same instance is returned on every call so that whoever fills the buffer
// and whoever drains it are always working on the same sample queue.
func (au *Audio) Buffer() *Buffer {
	if au.buffer == nil {
		au.buffer = &Buffer{
			au: au,
		}
	}
	return au.buffer
}

// Prefetch generates n samples and appends them to the buffer. Samples are
// stored as 16-bit little-endian values.
func (b *Buffer) Prefetch(n int) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for range n {
		s := b.au.sample()
		b.data = append(b.data, uint8(s), uint8(s>>8))
	}
}

func (b *Buffer) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(b.data), len(buf))

	// the number of bytes returned needs to be a multiple of two because of
	// the sample format (16-bit little-endian)
	n -= n % 2

	copy(buf, b.data[:n])
	b.data = b.data[n:]

	return n, nil
}
