package wire

// Policy selects, at compile time, whether a request captures per-request
// protocol errors.
type Policy interface {
	Checked | Unchecked
	captures() bool
}

// Checked requests hand the transport an error slot during resolution.
type Checked struct{}

func (Checked) captures() bool { return true }

// Unchecked requests capture nothing. Failures are only visible through
// Conn.Err or the transport's own error reporting.
type Unchecked struct{}

func (Unchecked) captures() bool { return false }

// ErrorSlot is the storage a transport fills with a protocol error packet.
type ErrorSlot struct {
	buf *Buffer
}

// Set stores an error packet. A previously stored packet is released.
func (s *ErrorSlot) Set(b *Buffer) {
	if s.buf != nil && s.buf != b {
		s.buf.Release()
	}
	s.buf = b
}

// Buffer returns the stored packet without transferring it.
func (s *ErrorSlot) Buffer() *Buffer {
	return s.buf
}

func (s *ErrorSlot) take() *Buffer {
	b := s.buf
	s.buf = nil
	return b
}
