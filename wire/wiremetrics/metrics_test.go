package wiremetrics

import (
	"testing"

	"github.com/danmuck/xcbind/internal/testutil/testlog"
	"github.com/danmuck/xcbind/wire"
	"github.com/danmuck/xcbind/wire/wiretest"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserverRecordsLifecycle(t *testing.T) {
	testlog.Start(t)
	Install()
	Install()
	defer wire.SetObserver(nil)

	c := wiretest.New()
	c.Handle(1, func([]byte) wiretest.Response { return wiretest.Response{Reply: make([]byte, 32)} })
	c.Handle(2, func([]byte) wiretest.Response { return wiretest.Error(wiretest.BadValue, 0) })

	submitted := testutil.ToFloat64(requestsSubmitted.WithLabelValues("true", "true"))
	replies := testutil.ToFloat64(requestsResolved.WithLabelValues(OutcomeReply, ""))
	failures := testutil.ToFloat64(requestsResolved.WithLabelValues(OutcomeError, "BadValue"))
	discards := testutil.ToFloat64(requestsDiscarded)

	ok := mustSubmit(t, c, 1)
	ok.Reply()
	ok.Close()
	bad := mustSubmit(t, c, 2)
	bad.Reply()
	bad.Close()
	dropped := mustSubmit(t, c, 1)
	dropped.Close()

	if got := testutil.ToFloat64(requestsSubmitted.WithLabelValues("true", "true")) - submitted; got != 3 {
		t.Fatalf("expected 3 submitted, got %v", got)
	}
	if got := testutil.ToFloat64(requestsResolved.WithLabelValues(OutcomeReply, "")) - replies; got != 1 {
		t.Fatalf("expected 1 reply, got %v", got)
	}
	if got := testutil.ToFloat64(requestsResolved.WithLabelValues(OutcomeError, "BadValue")) - failures; got != 1 {
		t.Fatalf("expected 1 error, got %v", got)
	}
	if got := testutil.ToFloat64(requestsDiscarded) - discards; got != 1 {
		t.Fatalf("expected 1 discard, got %v", got)
	}
}

func mustSubmit(t *testing.T, c wire.Conn, opcode uint8) *wire.Request[wire.Checked] {
	t.Helper()
	data, err := wire.NewEncoder(opcode).Finish()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	r, err := wire.Submit[wire.Checked](c, data, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return r
}
