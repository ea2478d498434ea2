package wire

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type phase uint8

const (
	phasePending phase = iota
	phaseResolved
	phaseClosed
	phaseMoved
)

func (p phase) String() string {
	switch p {
	case phasePending:
		return "pending"
	case phaseResolved:
		return "resolved"
	case phaseClosed:
		return "closed"
	default:
		return "moved"
	}
}

// noCopy lets go vet flag copies of a Request.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Request is the asynchronous result of one submitted request. It resolves
// on first access, owns the reply (and, when Checked, the error) it receives,
// and must be closed. A Request is not safe for concurrent use and must not
// be copied; use Move to hand it on.
type Request[P Policy] struct {
	noCopy noCopy

	tracker Tracker
	slot    ErrorSlot
	perr    *ProtocolError
	reply   *Buffer
	phase   phase
	started time.Time
}

// Submit sends data on c and returns the pending handle. The connection is
// checked before and after submission.
func Submit[P Policy](c Conn, data []byte, hasReply bool) (*Request[P], error) {
	if err := CheckConn(c); err != nil {
		return nil, err
	}
	var p P
	cookie := c.SendRequest(Payload{Data: data, HasReply: hasReply, Checked: p.captures()})
	r := Wrap[P](c, cookie)
	notifySubmitted(cookie)
	log.Trace().
		Uint64("seq", cookie.Sequence).
		Bool("reply", cookie.Reply).
		Bool("checked", cookie.Checked).
		Msg("wire.Submit")
	if err := CheckConn(c); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Wrap adopts a cookie that was already submitted on c.
func Wrap[P Policy](c Conn, cookie Cookie) *Request[P] {
	return &Request[P]{
		tracker: NewTracker(c, cookie),
		started: time.Now(),
	}
}

func (r *Request[P]) Conn() Conn { return r.tracker.Conn() }

func (r *Request[P]) Cookie() Cookie { return r.tracker.Cookie() }

// Done reports whether the handle is no longer pending.
func (r *Request[P]) Done() bool { return r.phase != phasePending }

func (r *Request[P]) errorSlot() *ErrorSlot {
	var p P
	if p.captures() {
		return &r.slot
	}
	return nil
}

// resolve blocks for the reply the first time it runs.
func (r *Request[P]) resolve() {
	if r.phase != phasePending {
		return
	}
	r.phase = phaseResolved
	if !r.tracker.Valid() {
		return
	}
	cookie := r.tracker.Cookie()
	reply := r.tracker.Conn().WaitForReply(cookie, r.errorSlot())
	r.tracker.Invalidate()

	if b := r.slot.take(); b != nil {
		r.perr = NewProtocolError(b)
		if reply != nil {
			reply.Release()
			reply = nil
		}
	}
	if !cookie.Reply && reply != nil {
		reply.Release()
		reply = nil
	}
	r.reply = reply

	var event *zerolog.Event
	if r.perr != nil {
		event = log.Warn().Uint8("error_code", r.perr.Code)
	} else {
		event = log.Debug()
	}
	event.
		Uint64("seq", cookie.Sequence).
		Bool("reply", reply != nil).
		Msg("wire.Request resolved")
	notifyResolved(cookie, reply != nil, r.perr, time.Since(r.started))
}

// Reply resolves and returns the held reply buffer, or nil when there is
// none. It never reports an error.
func (r *Request[P]) Reply() *Buffer {
	r.resolve()
	return r.reply
}

// TakeReply resolves and transfers the reply to the caller, who then owns
// its release. A second call returns nil.
func (r *Request[P]) TakeReply() *Buffer {
	r.resolve()
	b := r.reply
	r.reply = nil
	return b
}

// Err resolves and returns the captured protocol error, if any. It stays
// until TakeError. Unchecked requests always return nil.
func (r *Request[P]) Err() error {
	r.resolve()
	if r.perr == nil {
		return nil
	}
	return r.perr
}

// TakeError resolves and transfers the captured error to the caller.
func (r *Request[P]) TakeError() *ProtocolError {
	r.resolve()
	e := r.perr
	r.perr = nil
	return e
}

// Get is the strict access path: it resolves and fails with the captured
// *ProtocolError, a *ConnectionError for a broken connection, or a
// *UsageError when no reply is held.
func (r *Request[P]) Get() (*Buffer, error) {
	switch r.phase {
	case phaseMoved:
		return nil, &UsageError{Op: "get", Reason: "request handle was moved"}
	case phaseClosed:
		return nil, &UsageError{Op: "get", Reason: "request handle is closed"}
	}
	r.resolve()
	if r.perr != nil {
		return nil, r.perr
	}
	if err := CheckConn(r.tracker.Conn()); err != nil {
		return nil, err
	}
	if r.reply == nil {
		return nil, &UsageError{Op: "get", Reason: "no reply held"}
	}
	return r.reply, nil
}

// Success resolves and reports whether the request completed without error.
// A closed or moved handle never reports success.
func (r *Request[P]) Success() bool {
	if r.phase == phaseClosed || r.phase == phaseMoved {
		return false
	}
	r.resolve()
	if r.perr != nil {
		return false
	}
	if r.reply != nil {
		return true
	}
	return CheckConn(r.tracker.Conn()) == nil
}

// Discard cancels a pending request without blocking. It has no effect once
// resolution has happened.
func (r *Request[P]) Discard() {
	if r.phase != phasePending {
		return
	}
	r.tracker.Discard()
	r.phase = phaseResolved
}

// Close ends the handle: a pending cookie is discarded, never waited on, and
// any reply or error still owned is released. Close is idempotent.
func (r *Request[P]) Close() {
	switch r.phase {
	case phasePending:
		r.tracker.Close()
	case phaseResolved:
		r.reply.Release()
		r.perr.Release()
	default:
		return
	}
	r.reply = nil
	r.perr = nil
	r.phase = phaseClosed
}

// Move transfers the cookie, reply and error to a new handle. r is left in a
// terminal state that performs no protocol interaction.
func (r *Request[P]) Move() *Request[P] {
	out := &Request[P]{
		tracker: r.tracker.Move(),
		perr:    r.perr,
		reply:   r.reply,
		phase:   r.phase,
		started: r.started,
	}
	r.perr = nil
	r.reply = nil
	r.phase = phaseMoved
	return out
}
