package wire

import (
	"sync/atomic"
	"time"
)

// Observer receives request lifecycle notifications. Implementations must be
// cheap and must not call back into the request.
type Observer interface {
	Submitted(cookie Cookie)
	Resolved(cookie Cookie, reply bool, perr *ProtocolError, elapsed time.Duration)
	Discarded(cookie Cookie)
}

type observerHolder struct{ o Observer }

var observer atomic.Pointer[observerHolder]

// SetObserver installs o for every request; nil removes it.
func SetObserver(o Observer) {
	if o == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&observerHolder{o: o})
}

func notifySubmitted(cookie Cookie) {
	if h := observer.Load(); h != nil {
		h.o.Submitted(cookie)
	}
}

func notifyResolved(cookie Cookie, reply bool, perr *ProtocolError, elapsed time.Duration) {
	if h := observer.Load(); h != nil {
		h.o.Resolved(cookie, reply, perr, elapsed)
	}
}

func notifyDiscarded(cookie Cookie) {
	if h := observer.Load(); h != nil {
		h.o.Discarded(cookie)
	}
}
