package xproto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/xcbind/internal/fakex"
	"github.com/danmuck/xcbind/internal/testutil/testlog"
	"github.com/danmuck/xcbind/wire"
	"github.com/danmuck/xcbind/wire/wiretest"
	"github.com/danmuck/xcbind/xproto"
)

const invalidAtom = ^xproto.Atom(0)

func assertNoLeaks(t *testing.T, c *wiretest.Conn) {
	t.Helper()
	stats := c.Stats()
	if stats.Allocated != stats.Released {
		t.Fatalf("leaked buffers: %+v", stats)
	}
	if c.Outstanding() != 0 {
		t.Fatalf("left %d replies outstanding", c.Outstanding())
	}
}

func TestInternAtomPrimaryChecked(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()

	cookie, err := xproto.NewInternAtom(c, false, "PRIMARY")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	reply, err := cookie.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reply.Atom() == 0 || reply.Atom() != 1 {
		t.Fatalf("unexpected atom: %d", reply.Atom())
	}
	if cookie.Err() != nil {
		t.Fatalf("unexpected error: %v", cookie.Err())
	}
	if !cookie.Success() || cookie.Reply().Atom() != reply.Atom() {
		t.Fatalf("expected repeated access to return the same reply")
	}

	sent := c.Sent()[0]
	if !sent.Checked || !sent.HasReply || len(sent.Data) != 16 || sent.Data[0] != xproto.InternAtomOpcode {
		t.Fatalf("unexpected request: %+v", sent)
	}
	if wire.Card16(sent.Data, 2) != 4 || wire.Card16(sent.Data, 4) != 7 {
		t.Fatalf("unexpected request header: %v", sent.Data)
	}
	cookie.Close()
	assertNoLeaks(t, c)
}

func TestInternAtomUncheckedAllocates(t *testing.T) {
	testlog.Start(t)
	c, srv := fakex.NewConn()

	cookie, err := xproto.NewInternAtomUnchecked(c, false, "_NET_WM_NAME")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	atom := cookie.Reply().Atom()
	if atom == 0 || atom != srv.Atom("_NET_WM_NAME") {
		t.Fatalf("unexpected atom: %d", atom)
	}
	if c.Sent()[0].Checked {
		t.Fatalf("unchecked variant submitted a checked request")
	}

	missing, err := xproto.NewInternAtom(c, true, "_NOT_THERE")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer missing.Close()
	if got := missing.Reply().Atom(); got != 0 {
		t.Fatalf("only_if_exists interned an atom: %d", got)
	}

	name, err := xproto.NewGetAtomName(c, atom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer name.Close()
	reply, err := name.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reply.Name().String() != "_NET_WM_NAME" || int(reply.NameLen()) != reply.Name().Len() {
		t.Fatalf("unexpected name: %q", reply.Name().String())
	}
}

func TestGetAtomNameInvalidGetFails(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()

	cookie, err := xproto.NewGetAtomName(c, invalidAtom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	_, err = cookie.Get()
	var perr *wire.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected protocol error, got %v", err)
	}
	if perr.Code != wiretest.BadAtom || perr.ResourceID != uint32(invalidAtom) || perr.MajorOpcode != xproto.GetAtomNameOpcode {
		t.Fatalf("unexpected error: %+v", perr)
	}
	if !cookie.Reply().IsNil() {
		t.Fatalf("expected no reply alongside the error")
	}
	cookie.Close()
	assertNoLeaks(t, c)
}

func TestGetAtomNameInvalidQueryFirst(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()

	cookie, err := xproto.NewGetAtomName(c, invalidAtom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	if cookie.Err() == nil {
		t.Fatalf("expected captured error from the query path")
	}
	if _, err := cookie.Get(); !errors.Is(err, wire.ErrProtocol) {
		t.Fatalf("expected the error to persist for Get, got %v", err)
	}
	taken := cookie.TakeError()
	if taken == nil || cookie.Err() != nil {
		t.Fatalf("expected TakeError to transfer the error")
	}
	taken.Release()
	if _, err := cookie.Get(); !errors.Is(err, wire.ErrUsage) {
		t.Fatalf("expected usage error once the error is taken, got %v", err)
	}
}

func TestModifierMappingIterationMatchesIndexing(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()

	cookie, err := xproto.NewGetModifierMapping(c)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	reply, err := cookie.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	keycodes := reply.Keycodes()
	if keycodes.Len() != int(reply.KeycodesPerModifier())*8 || keycodes.Len() != 16 {
		t.Fatalf("unexpected keycode count: %d", keycodes.Len())
	}

	var iterated []xproto.Keycode
	for it := keycodes.Begin(); it.Less(keycodes.End()); it = it.Next() {
		iterated = append(iterated, it.Value())
	}
	if len(iterated) != keycodes.Len() {
		t.Fatalf("iterator visited %d of %d", len(iterated), keycodes.Len())
	}
	for i, k := range iterated {
		if k != keycodes.At(i) {
			t.Fatalf("keycode %d: iterator=%d index=%d", i, k, keycodes.At(i))
		}
	}
	for i, k := range keycodes.All() {
		if k != iterated[i] {
			t.Fatalf("range keycode %d mismatch", i)
		}
	}
	if keycodes.At(0) != 50 || keycodes.At(4) != 37 {
		t.Fatalf("unexpected modifier map: %v", keycodes.Collect())
	}
}

func TestQueryFontListsAndNestedStructs(t *testing.T) {
	testlog.Start(t)
	c, srv := fakex.NewConn()
	srv.AddFont(7, fakex.Font{
		MinBounds:   fakex.CharMetrics{CharacterWidth: 4, Ascent: 8},
		MaxBounds:   fakex.CharMetrics{CharacterWidth: 9, Ascent: 11, Descent: -2},
		DefaultChar: 32,
		Ascent:      11,
		Descent:     3,
		Properties: []fakex.FontProp{
			{Name: 18, Value: 100},
			{Name: 39, Value: 200},
			{Name: 31, Value: 300},
		},
		Chars: []fakex.CharMetrics{
			{CharacterWidth: 5},
			{CharacterWidth: 6, LeftSideBearing: -1},
		},
	})

	cookie, err := xproto.NewQueryFont(c, 7)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	reply, err := cookie.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if reply.MinBounds().CharacterWidth() != 4 || reply.MaxBounds().Descent() != -2 {
		t.Fatalf("unexpected bounds: min=%d max=%d", reply.MinBounds().CharacterWidth(), reply.MaxBounds().Descent())
	}
	if reply.DefaultChar() != 32 || reply.FontAscent() != 11 || !reply.AllCharsExist() {
		t.Fatalf("unexpected fixed fields")
	}
	props := reply.Properties()
	if props.Len() != 3 || props.At(1).Name() != 39 || props.At(2).Value() != 300 {
		t.Fatalf("unexpected properties: len=%d", props.Len())
	}
	chars := reply.CharInfos()
	if chars.Len() != 2 || chars.At(1).CharacterWidth() != 6 || chars.At(1).LeftSideBearing() != -1 {
		t.Fatalf("unexpected char infos: len=%d", chars.Len())
	}
	if len(chars.At(0).Bytes()) != xproto.CharInfoSize {
		t.Fatalf("char info view is not bounded to its element")
	}
}

func TestQueryFontUnknown(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewQueryFont(c, 99)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	var perr *wire.ProtocolError
	if _, err := cookie.Get(); !errors.As(err, &perr) || perr.Code != wiretest.BadFont {
		t.Fatalf("expected BadFont, got %v", err)
	}
	if cookie.Reply().Properties().Len() != 0 {
		t.Fatalf("nil reply should have empty lists")
	}
}

func TestMapWindowPolicies(t *testing.T) {
	testlog.Start(t)
	c, srv := fakex.NewConn()
	srv.AddWindow(0x200)

	ok, err := xproto.NewMapWindowChecked(c, 0x200)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !ok.Success() || ok.Err() != nil || !srv.Mapped(0x200) {
		t.Fatalf("expected window mapped")
	}
	ok.Close()

	bad, err := xproto.NewMapWindowChecked(c, 0x999)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	var perr *wire.ProtocolError
	if !errors.As(bad.Err(), &perr) || perr.Code != wiretest.BadWindow || perr.ResourceID != 0x999 {
		t.Fatalf("expected BadWindow, got %v", bad.Err())
	}
	if bad.Success() {
		t.Fatalf("expected checked void failure")
	}
	bad.Close()

	quiet, err := xproto.NewMapWindow(c, 0x999)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !quiet.Success() {
		t.Fatalf("unchecked failure should only be visible on the event queue")
	}
	quiet.Close()
	if len(c.Events()) != 1 {
		t.Fatalf("expected one queued error, got %d", len(c.Events()))
	}
	assertNoLeaks(t, c)
}

func TestGetInputFocus(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewGetInputFocusUnchecked(c)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	reply := cookie.Reply()
	if reply.Focus() != fakex.RootWindow || reply.RevertTo() != fakex.RevertToPointerRoot {
		t.Fatalf("unexpected focus: %#x revert=%d", reply.Focus(), reply.RevertTo())
	}
}

func TestDefaultConnection(t *testing.T) {
	testlog.Start(t)
	wire.SetDefault(nil)
	_, err := xproto.NewInternAtomDefault(false, "PRIMARY")
	var ce *wire.ConnectionError
	if !errors.As(err, &ce) || ce.Code != wire.ConnNoConnection {
		t.Fatalf("expected no-connection error, got %v", err)
	}

	c, _ := fakex.NewConn()
	wire.SetDefault(c)
	defer wire.SetDefault(nil)
	cookie, err := xproto.NewInternAtomDefault(false, "STRING")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	defer cookie.Close()
	if cookie.Conn() != c || cookie.Reply().Atom() != 31 {
		t.Fatalf("default constructor did not use the default connection")
	}
}

func TestTakeReplyOnce(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewInternAtom(c, false, "ATOM")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	b := cookie.TakeReply()
	if b == nil || cookie.TakeReply() != nil {
		t.Fatalf("expected exactly one reply transfer")
	}
	if xproto.NewInternAtomReply(b.Bytes()).Atom() != 4 {
		t.Fatalf("unexpected atom in taken reply")
	}
	if !cookie.Reply().IsNil() {
		t.Fatalf("handle still exposes a taken reply")
	}
	cookie.Close()
	b.Release()
	assertNoLeaks(t, c)
}

func TestCloseWhilePendingDiscards(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewQueryFont(c, 99)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	cookie.Close()
	stats := c.Stats()
	if stats.Waits != 0 || stats.Discards != 1 {
		t.Fatalf("expected discard without wait: %+v", stats)
	}
	assertNoLeaks(t, c)
}

func TestMoveTransfersCookie(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	src, err := xproto.NewInternAtom(c, false, "CARDINAL")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	seq := src.Cookie().Sequence
	dst := src.Move()
	src.Close()
	if c.Stats().Discards != 0 || !src.Reply().IsNil() {
		t.Fatalf("moved-from handle interacted with the connection")
	}
	if dst.Cookie().Sequence != seq || dst.Reply().Atom() != 6 {
		t.Fatalf("moved handle lost its cookie")
	}
	if src.Success() {
		t.Fatalf("moved-from handle reported success")
	}
	dst.Close()
	if dst.Success() {
		t.Fatalf("closed handle reported success")
	}
	assertNoLeaks(t, c)
}

func TestResolutionOrderIsFree(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	names := []string{"PRIMARY", "SECONDARY", "ARC"}
	cookies := make([]*xproto.InternAtom, len(names))
	for i, name := range names {
		cookie, err := xproto.NewInternAtom(c, false, name)
		if err != nil {
			t.Fatalf("submit %s: %v", name, err)
		}
		cookies[i] = cookie
	}
	for i := len(cookies) - 1; i >= 0; i-- {
		if got := cookies[i].Reply().Atom(); got != xproto.Atom(i+1) {
			t.Fatalf("%s resolved to %d", names[i], got)
		}
		cookies[i].Close()
	}
	assertNoLeaks(t, c)
}

func TestBrokenConnection(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewInternAtom(c, false, "PRIMARY")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	c.Break(wire.ConnError)

	reply, err := cookie.Get()
	if !errors.Is(err, wire.ErrConnection) || !reply.IsNil() {
		t.Fatalf("expected connection error, got %v", err)
	}
	if cookie.Err() != nil || !cookie.Reply().IsNil() {
		t.Fatalf("broken connection should leave both error and reply empty")
	}
	cookie.Close()

	if _, err := xproto.NewInternAtom(c, false, "PRIMARY"); !errors.Is(err, wire.ErrConnection) {
		t.Fatalf("expected construction to fail, got %v", err)
	}
}

func TestRequestTooLong(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	name := make([]byte, wire.MaxRequestLength)
	_, err := xproto.NewInternAtom(c, false, string(name))
	var ce *wire.ConnectionError
	if !errors.As(err, &ce) || ce.Code != wire.ConnReqLenExceed {
		t.Fatalf("expected request length error, got %v", err)
	}
	if len(c.Sent()) != 0 {
		t.Fatalf("oversized request was submitted")
	}
}

func TestInternAtomNameOverflowsLengthField(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	_, err := xproto.NewInternAtom(c, false, strings.Repeat("A", 70000))
	var ce *wire.ConnectionError
	if !errors.As(err, &ce) || ce.Code != wire.ConnReqLenExceed {
		t.Fatalf("expected request length error, got %v", err)
	}
	if len(c.Sent()) != 0 {
		t.Fatalf("request with a truncated name_len was submitted")
	}
}

func TestSuccessFalseAfterTakeErrorAndClose(t *testing.T) {
	testlog.Start(t)
	c, _ := fakex.NewConn()
	cookie, err := xproto.NewGetAtomName(c, invalidAtom)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	cookie.TakeError().Release()
	cookie.Close()
	if cookie.Success() {
		t.Fatalf("closed handle reported success after its error was taken")
	}
	assertNoLeaks(t, c)
}
