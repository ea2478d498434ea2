package wire

import "sync/atomic"

// Payload is one encoded request handed to the transport.
type Payload struct {
	Data     []byte
	HasReply bool
	Checked  bool
}

// Cookie correlates a submitted request with its eventual reply or error.
// Pending state is tracked by Tracker, so every Sequence value is legal.
type Cookie struct {
	Sequence uint64
	Reply    bool
	Checked  bool
}

// Conn is the transport session a request borrows. xcbind never creates or
// closes one and does not lock it; a Conn is used from one goroutine.
type Conn interface {
	// SendRequest submits req and returns its cookie without blocking.
	SendRequest(req Payload) Cookie
	// WaitForReply blocks until the transport has the reply or error for
	// cookie. A protocol error is stored in slot; a nil slot means the caller
	// does not capture errors. Void requests return a nil reply.
	WaitForReply(cookie Cookie, slot *ErrorSlot) *Buffer
	// DiscardReply drops the eventual reply for a sequence without blocking.
	DiscardReply(sequence uint64)
	// Err returns non-nil once the session is broken.
	Err() error
}

type connHolder struct{ c Conn }

var defaultConn atomic.Pointer[connHolder]

// SetDefault installs the process-wide connection used by generated
// New...Default constructors. Passing nil clears it.
func SetDefault(c Conn) {
	if c == nil {
		defaultConn.Store(nil)
		return
	}
	defaultConn.Store(&connHolder{c: c})
}

// Default returns the process-wide connection, or nil.
func Default() Conn {
	h := defaultConn.Load()
	if h == nil {
		return nil
	}
	return h.c
}
