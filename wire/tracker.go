package wire

import "github.com/rs/zerolog/log"

// Tracker holds the cookie of one outstanding request against a borrowed
// connection. At most one Tracker claims a cookie; Move is the only way to
// hand it on.
type Tracker struct {
	conn    Conn
	cookie  Cookie
	pending bool
}

func NewTracker(c Conn, cookie Cookie) Tracker {
	return Tracker{conn: c, cookie: cookie, pending: c != nil}
}

func (t *Tracker) Conn() Conn { return t.conn }

func (t *Tracker) Cookie() Cookie { return t.cookie }

// Valid reports whether a resolution is still outstanding.
func (t *Tracker) Valid() bool { return t.pending }

func (t *Tracker) Invalidate() { t.pending = false }

// Discard asks the transport to drop the eventual reply, without blocking.
func (t *Tracker) Discard() {
	if !t.pending {
		return
	}
	log.Trace().Uint64("seq", t.cookie.Sequence).Msg("wire.Tracker discard")
	t.conn.DiscardReply(t.cookie.Sequence)
	t.Invalidate()
	notifyDiscarded(t.cookie)
}

// Close is the end of the tracker's life; a pending cookie is discarded.
func (t *Tracker) Close() { t.Discard() }

// Move returns a tracker owning the connection and cookie and leaves t
// invalid and detached.
func (t *Tracker) Move() Tracker {
	out := *t
	*t = Tracker{}
	return out
}
