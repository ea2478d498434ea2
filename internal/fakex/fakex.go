// Package fakex answers core X requests for tests: a small in-memory server
// state installed as handlers on a wiretest.Conn.
package fakex

import (
	"encoding/binary"
	"sync"

	"github.com/danmuck/xcbind/wire"
	"github.com/danmuck/xcbind/wire/wiretest"
	"github.com/danmuck/xcbind/xproto"
)

const (
	// RootWindow always exists.
	RootWindow xproto.Window = 0x100
	// KeycodesPerModifier is the width of the default modifier map.
	KeycodesPerModifier = 2
	// RevertToPointerRoot is the focus revert mode reported by GetInputFocus.
	RevertToPointerRoot = 1
)

var predefinedAtoms = []string{
	"PRIMARY", "SECONDARY", "ARC", "ATOM", "BITMAP", "CARDINAL", "COLORMAP",
	"CURSOR", "CUT_BUFFER0", "CUT_BUFFER1", "CUT_BUFFER2", "CUT_BUFFER3",
	"CUT_BUFFER4", "CUT_BUFFER5", "CUT_BUFFER6", "CUT_BUFFER7", "DRAWABLE",
	"FONT", "INTEGER", "PIXMAP", "POINT", "RECTANGLE", "RESOURCE_MANAGER",
	"RGB_COLOR_MAP", "RGB_BEST_MAP", "RGB_BLUE_MAP", "RGB_DEFAULT_MAP",
	"RGB_GRAY_MAP", "RGB_GREEN_MAP", "RGB_RED_MAP", "STRING", "VISUALID",
	"WINDOW", "WM_COMMAND", "WM_HINTS", "WM_CLIENT_MACHINE", "WM_ICON_NAME",
	"WM_ICON_SIZE", "WM_NAME",
}

var order = binary.LittleEndian

type CharMetrics struct {
	LeftSideBearing  int16
	RightSideBearing int16
	CharacterWidth   int16
	Ascent           int16
	Descent          int16
	Attributes       uint16
}

type FontProp struct {
	Name  xproto.Atom
	Value uint32
}

type Font struct {
	MinBounds   CharMetrics
	MaxBounds   CharMetrics
	DefaultChar uint16
	Ascent      int16
	Descent     int16
	Properties  []FontProp
	Chars       []CharMetrics
}

// Server is the fake server state. It is safe for concurrent use.
type Server struct {
	mu      sync.Mutex
	atoms   map[string]xproto.Atom
	names   map[xproto.Atom]string
	next    xproto.Atom
	windows map[xproto.Window]bool
	fonts   map[xproto.Font]Font
	focus   xproto.Window
	modmap  []xproto.Keycode
}

func New() *Server {
	s := &Server{
		atoms:   make(map[string]xproto.Atom),
		names:   make(map[xproto.Atom]string),
		windows: map[xproto.Window]bool{RootWindow: false},
		fonts:   make(map[xproto.Font]Font),
		focus:   RootWindow,
	}
	for i, name := range predefinedAtoms {
		s.intern(name, xproto.Atom(i+1))
	}
	s.next = xproto.Atom(len(predefinedAtoms) + 1)
	// Shift, Lock, Control, Mod1..Mod5.
	s.modmap = []xproto.Keycode{
		50, 62, 66, 0, 37, 105, 64, 108,
		77, 0, 0, 0, 133, 134, 92, 0,
	}
	return s
}

// NewConn returns a fake connection answered by a new Server.
func NewConn() (*wiretest.Conn, *Server) {
	c := wiretest.New()
	s := New()
	s.Install(c)
	return c, s
}

// Install registers the server's request handlers on c.
func (s *Server) Install(c *wiretest.Conn) {
	c.Handle(xproto.MapWindowOpcode, s.locked(s.mapWindow))
	c.Handle(xproto.InternAtomOpcode, s.locked(s.internAtom))
	c.Handle(xproto.GetAtomNameOpcode, s.locked(s.getAtomName))
	c.Handle(xproto.GetInputFocusOpcode, s.locked(s.getInputFocus))
	c.Handle(xproto.QueryFontOpcode, s.locked(s.queryFont))
	c.Handle(xproto.GetModifierMappingOpcode, s.locked(s.getModifierMapping))
}

func (s *Server) locked(h wiretest.HandlerFunc) wiretest.HandlerFunc {
	return func(req []byte) wiretest.Response {
		if int(wire.Card16(req, 2))*4 != len(req) {
			return wiretest.Error(wiretest.BadLength, 0)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return h(req)
	}
}

func (s *Server) AddWindow(w xproto.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[w] = false
}

// Mapped reports whether w exists and has been mapped.
func (s *Server) Mapped(w xproto.Window) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows[w]
}

func (s *Server) AddFont(id xproto.Font, f Font) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts[id] = f
}

// Atom returns the atom interned for name, or 0.
func (s *Server) Atom(name string) xproto.Atom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atoms[name]
}

func (s *Server) intern(name string, a xproto.Atom) {
	s.atoms[name] = a
	s.names[a] = name
}

func (s *Server) mapWindow(req []byte) wiretest.Response {
	w := xproto.Window(wire.Card32(req, 4))
	if _, ok := s.windows[w]; !ok {
		return wiretest.Error(wiretest.BadWindow, uint32(w))
	}
	s.windows[w] = true
	return wiretest.Response{}
}

func (s *Server) internAtom(req []byte) wiretest.Response {
	onlyIfExists := wire.Bool(req, 1)
	n := int(wire.Card16(req, 4))
	name := wire.Sub(req, 8, n)
	if name == nil {
		return wiretest.Error(wiretest.BadLength, 0)
	}
	a, ok := s.atoms[string(name)]
	if !ok && !onlyIfExists {
		a = s.next
		s.next++
		s.intern(string(name), a)
	}
	reply := make([]byte, 32)
	order.PutUint32(reply[8:], uint32(a))
	return wiretest.Response{Reply: reply}
}

func (s *Server) getAtomName(req []byte) wiretest.Response {
	a := xproto.Atom(wire.Card32(req, 4))
	name, ok := s.names[a]
	if !ok {
		return wiretest.Error(wiretest.BadAtom, uint32(a))
	}
	reply := make([]byte, 32, 32+len(name))
	order.PutUint16(reply[8:], uint16(len(name)))
	reply = append(reply, name...)
	return wiretest.Response{Reply: reply}
}

func (s *Server) getInputFocus([]byte) wiretest.Response {
	reply := make([]byte, 32)
	reply[1] = RevertToPointerRoot
	order.PutUint32(reply[8:], uint32(s.focus))
	return wiretest.Response{Reply: reply}
}

func (s *Server) getModifierMapping([]byte) wiretest.Response {
	reply := make([]byte, 32, 32+len(s.modmap))
	reply[1] = KeycodesPerModifier
	for _, k := range s.modmap {
		reply = append(reply, byte(k))
	}
	return wiretest.Response{Reply: reply}
}

func (s *Server) queryFont(req []byte) wiretest.Response {
	id := xproto.Font(wire.Card32(req, 4))
	f, ok := s.fonts[id]
	if !ok {
		return wiretest.Error(wiretest.BadFont, uint32(id))
	}
	reply := make([]byte, 60)
	putMetrics(reply[8:20], f.MinBounds)
	putMetrics(reply[24:36], f.MaxBounds)
	order.PutUint16(reply[44:], f.DefaultChar)
	order.PutUint16(reply[46:], uint16(len(f.Properties)))
	order.PutUint16(reply[52:], uint16(f.Ascent))
	order.PutUint16(reply[54:], uint16(f.Descent))
	order.PutUint32(reply[56:], uint32(len(f.Chars)))
	if len(f.Chars) > 0 {
		order.PutUint16(reply[42:], uint16(len(f.Chars)-1))
		reply[51] = 1
	}
	for _, p := range f.Properties {
		reply = order.AppendUint32(reply, uint32(p.Name))
		reply = order.AppendUint32(reply, p.Value)
	}
	for _, c := range f.Chars {
		var b [xproto.CharInfoSize]byte
		putMetrics(b[:], c)
		reply = append(reply, b[:]...)
	}
	return wiretest.Response{Reply: reply}
}

func putMetrics(b []byte, m CharMetrics) {
	order.PutUint16(b[0:], uint16(m.LeftSideBearing))
	order.PutUint16(b[2:], uint16(m.RightSideBearing))
	order.PutUint16(b[4:], uint16(m.CharacterWidth))
	order.PutUint16(b[6:], uint16(m.Ascent))
	order.PutUint16(b[8:], uint16(m.Descent))
	order.PutUint16(b[10:], m.Attributes)
}
