// Package wiretest provides an in-memory wire.Conn for tests. Requests are
// answered by per-opcode handlers at submission time and held until the
// matching cookie is waited on or discarded.
package wiretest

import (
	"encoding/binary"
	"sync"

	"github.com/danmuck/xcbind/wire"
)

// Core error codes used by handlers.
const (
	BadRequest = 1
	BadValue   = 2
	BadWindow  = 3
	BadAtom    = 5
	BadFont    = 7
	BadLength  = 16
)

const replyHeaderLen = 32

var order = binary.LittleEndian

// Response is a handler's answer. Reply is a full reply packet whose header
// (type, sequence, length) is filled in by Conn; it is ignored for void
// requests. A non-zero ErrorCode produces an error packet instead.
type Response struct {
	Reply      []byte
	ErrorCode  uint8
	ResourceID uint32
	Minor      uint16
}

// Error is shorthand for an error response.
func Error(code uint8, resource uint32) Response {
	return Response{ErrorCode: code, ResourceID: resource}
}

// HandlerFunc answers one encoded request.
type HandlerFunc func(req []byte) Response

// Stats counts transport interactions.
type Stats struct {
	Submitted int
	Waits     int
	Discards  int
	Allocated int
	Released  int
}

type pending struct {
	reply []byte
	err   []byte
}

// Conn is a fake transport session. It is safe for concurrent use.
type Conn struct {
	mu       sync.Mutex
	seq      uint64
	handlers map[uint8]HandlerFunc
	pending  map[uint64]pending
	events   [][]byte
	sent     []wire.Payload
	broken   int
	stats    Stats
}

func New() *Conn {
	return &Conn{
		handlers: make(map[uint8]HandlerFunc),
		pending:  make(map[uint64]pending),
	}
}

// Handle registers h for a major opcode.
func (c *Conn) Handle(opcode uint8, h HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[opcode] = h
}

// Break marks the connection broken with an XCB connection error code.
func (c *Conn) Break(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broken = code
}

func (c *Conn) SendRequest(req wire.Payload) wire.Cookie {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.stats.Submitted++
	c.sent = append(c.sent, req)
	cookie := wire.Cookie{Sequence: c.seq, Reply: req.HasReply, Checked: req.Checked}
	if c.broken != 0 || len(req.Data) < 4 {
		return cookie
	}

	opcode := req.Data[0]
	h, ok := c.handlers[opcode]
	resp := Response{ErrorCode: BadRequest}
	if ok {
		resp = h(req.Data)
	}

	var p pending
	switch {
	case resp.ErrorCode != 0:
		p.err = errorPacket(c.seq, opcode, resp)
	case req.HasReply:
		p.reply = replyPacket(c.seq, resp.Reply)
	default:
		return cookie
	}
	if p.err != nil && !req.Checked && !req.HasReply {
		c.events = append(c.events, p.err)
		return cookie
	}
	c.pending[c.seq] = p
	return cookie
}

func (c *Conn) WaitForReply(cookie wire.Cookie, slot *wire.ErrorSlot) *wire.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Waits++
	if c.broken != 0 {
		return nil
	}
	p, ok := c.pending[cookie.Sequence]
	if !ok {
		return nil
	}
	delete(c.pending, cookie.Sequence)
	if p.err != nil {
		if slot == nil {
			c.events = append(c.events, p.err)
			return nil
		}
		slot.Set(c.buffer(p.err))
		return nil
	}
	return c.buffer(p.reply)
}

func (c *Conn) DiscardReply(sequence uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Discards++
	delete(c.pending, sequence)
}

func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken != 0 {
		return &wire.ConnectionError{Code: c.broken}
	}
	return nil
}

// buffer hands out a copy of packet whose release is counted.
func (c *Conn) buffer(packet []byte) *wire.Buffer {
	c.stats.Allocated++
	data := make([]byte, len(packet))
	copy(data, packet)
	return wire.NewBuffer(data, func([]byte) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.stats.Released++
	})
}

func (c *Conn) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Outstanding is the number of replies or errors not yet waited on or
// discarded.
func (c *Conn) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Events returns uncaptured error packets in arrival order.
func (c *Conn) Events() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.events))
	copy(out, c.events)
	return out
}

// Sent returns every submitted payload.
func (c *Conn) Sent() []wire.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]wire.Payload, len(c.sent))
	copy(out, c.sent)
	return out
}

func replyPacket(seq uint64, body []byte) []byte {
	n := len(body)
	if n < replyHeaderLen {
		n = replyHeaderLen
	}
	n = wire.Align(n, 4)
	out := make([]byte, n)
	copy(out, body)
	out[0] = 1
	order.PutUint16(out[2:4], uint16(seq))
	order.PutUint32(out[4:8], uint32((n-replyHeaderLen)/4))
	return out
}

func errorPacket(seq uint64, opcode uint8, resp Response) []byte {
	out := make([]byte, replyHeaderLen)
	out[0] = 0
	out[1] = resp.ErrorCode
	order.PutUint16(out[2:4], uint16(seq))
	order.PutUint32(out[4:8], resp.ResourceID)
	order.PutUint16(out[8:10], resp.Minor)
	out[10] = opcode
	return out
}
