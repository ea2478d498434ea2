package wire

// Buffer is transport-allocated reply or error memory with a single owner.
// Release runs the transport's release action exactly once; later calls are
// no-ops and Bytes returns nil afterwards.
type Buffer struct {
	data    []byte
	release func([]byte)
	done    bool
}

// NewBuffer wraps data. release may be nil when the memory is garbage
// collected.
func NewBuffer(data []byte, release func([]byte)) *Buffer {
	return &Buffer{data: data, release: release}
}

// Bytes returns the owned memory without copying.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.done {
		return nil
	}
	return b.data
}

// Len returns the buffer length.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// Released reports whether Release has run.
func (b *Buffer) Released() bool {
	return b == nil || b.done
}

func (b *Buffer) Release() {
	if b == nil || b.done {
		return
	}
	b.done = true
	data := b.data
	b.data = nil
	if b.release != nil {
		b.release(data)
	}
}
