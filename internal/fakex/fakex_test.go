package fakex

import (
	"testing"

	"github.com/danmuck/xcbind/internal/testutil/testlog"
	"github.com/danmuck/xcbind/wire"
	"github.com/danmuck/xcbind/wire/wiretest"
	"github.com/danmuck/xcbind/xproto"
)

func TestPredefinedAtoms(t *testing.T) {
	testlog.Start(t)
	s := New()
	if s.Atom("PRIMARY") != 1 || s.Atom("WM_NAME") != 39 {
		t.Fatalf("unexpected predefined atoms: PRIMARY=%d WM_NAME=%d", s.Atom("PRIMARY"), s.Atom("WM_NAME"))
	}
	if s.Atom("_MISSING") != 0 {
		t.Fatalf("unknown atom should be 0")
	}
}

func TestInternAllocatesSequentially(t *testing.T) {
	testlog.Start(t)
	s := New()
	for i, name := range []string{"_A", "_B", "_A"} {
		e := wire.NewEncoder(xproto.InternAtomOpcode)
		e.PutBool(false)
		e.PutCard16(uint16(len(name)))
		e.Pad(2)
		e.PutString(name)
		req, err := e.Finish()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		resp := s.locked(s.internAtom)(req)
		want := uint32(40 + i)
		if i == 2 {
			want = 40
		}
		if resp.ErrorCode != 0 || wire.Card32(resp.Reply, 8) != want {
			t.Fatalf("%s: got atom %d want %d", name, wire.Card32(resp.Reply, 8), want)
		}
	}
}

func TestLengthMismatchIsBadLength(t *testing.T) {
	testlog.Start(t)
	s := New()
	req := []byte{xproto.GetAtomNameOpcode, 0, 3, 0, 1, 0, 0, 0}
	if resp := s.locked(s.getAtomName)(req); resp.ErrorCode != wiretest.BadLength {
		t.Fatalf("expected BadLength, got %+v", resp)
	}
}

func TestQueryFontLayout(t *testing.T) {
	testlog.Start(t)
	s := New()
	s.AddFont(3, Font{
		Properties: []FontProp{{Name: 18, Value: 7}},
		Chars:      []CharMetrics{{CharacterWidth: 1}, {CharacterWidth: 2}},
	})
	req := []byte{xproto.QueryFontOpcode, 0, 2, 0, 3, 0, 0, 0}
	resp := s.locked(s.queryFont)(req)
	if resp.ErrorCode != 0 {
		t.Fatalf("unexpected error %d", resp.ErrorCode)
	}
	if len(resp.Reply) != 60+8+2*xproto.CharInfoSize {
		t.Fatalf("unexpected reply size %d", len(resp.Reply))
	}
	if wire.Card16(resp.Reply, 46) != 1 || wire.Card32(resp.Reply, 56) != 2 || !wire.Bool(resp.Reply, 51) {
		t.Fatalf("unexpected counts in reply header")
	}
	if wire.Int16(resp.Reply, 68+xproto.CharInfoSize+4) != 2 {
		t.Fatalf("second char info misplaced")
	}
}

func TestMapWindowMarksMapped(t *testing.T) {
	testlog.Start(t)
	c, s := NewConn()
	s.AddWindow(0x300)
	if s.Mapped(0x300) {
		t.Fatalf("window mapped before request")
	}
	e := wire.NewEncoder(xproto.MapWindowOpcode)
	e.Pad(1)
	e.PutCard32(0x300)
	data, err := e.Finish()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	c.SendRequest(wire.Payload{Data: data})
	if !s.Mapped(0x300) || len(c.Events()) != 0 {
		t.Fatalf("expected window mapped without errors")
	}
}
