package matrix

import "sync/atomic"

// buffer is reference-counted float32 storage shared between matrix handles.
// Handles sharing a buffer treat it as read-only until one of them needs to
// write, at which point that handle takes a private copy (copy-on-write).
type buffer struct {
	data     []float32
	refCount atomic.Int32
}

// newBuffer allocates zeroed storage with refCount = 1.
func newBuffer(n int) *buffer {
	buf := &buffer{
		data: make([]float32, n),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone and views).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops storage when it reaches 0.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique returns true if exactly one handle references this buffer.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}

// copyOf returns a new unique buffer holding a copy of b's storage.
func (b *buffer) copyOf() *buffer {
	nb := newBuffer(len(b.data))
	copy(nb.data, b.data)
	return nb
}
