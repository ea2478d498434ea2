package wire

import (
	"encoding/binary"
	"fmt"
)

// MaxRequestLength is the core protocol limit, in bytes, without the
// BIG-REQUESTS extension.
const MaxRequestLength = 0xffff * 4

// Encoder builds one request in core wire layout: opcode, a data byte, the
// length in 4-byte units, then the body. The first 1-byte field written lands
// in the data byte.
type Encoder struct {
	buf     []byte
	started bool
}

func NewEncoder(opcode uint8) *Encoder {
	return &Encoder{buf: []byte{opcode, 0, 0, 0}}
}

func (e *Encoder) dataByte(v byte) bool {
	if e.started {
		return false
	}
	e.started = true
	e.buf[1] = v
	return true
}

func (e *Encoder) PutCard8(v uint8) {
	if e.dataByte(v) {
		return
	}
	e.buf = append(e.buf, v)
}

func (e *Encoder) PutInt8(v int8) { e.PutCard8(uint8(v)) }

func (e *Encoder) PutBool(v bool) {
	b := uint8(0)
	if v {
		b = 1
	}
	e.PutCard8(b)
}

func (e *Encoder) PutCard16(v uint16) {
	e.started = true
	e.buf = byteOrder.AppendUint16(e.buf, v)
}

func (e *Encoder) PutInt16(v int16) { e.PutCard16(uint16(v)) }

func (e *Encoder) PutCard32(v uint32) {
	e.started = true
	e.buf = byteOrder.AppendUint32(e.buf, v)
}

func (e *Encoder) PutInt32(v int32) { e.PutCard32(uint32(v)) }

// Pad writes n zero bytes; a leading pad consumes the data byte first.
func (e *Encoder) Pad(n int) {
	if n <= 0 {
		return
	}
	if e.dataByte(0) {
		n--
	}
	for ; n > 0; n-- {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) PutBytes(b []byte) {
	e.started = true
	e.buf = append(e.buf, b...)
}

func (e *Encoder) PutString(s string) {
	e.started = true
	e.buf = append(e.buf, s...)
}

// PutList appends scalar list elements.
func PutList[T Scalar](e *Encoder, list []T) {
	e.started = true
	if len(list) == 0 {
		return
	}
	switch binary.Size(list[0]) {
	case 1:
		for _, v := range list {
			e.buf = append(e.buf, uint8(v))
		}
	case 2:
		for _, v := range list {
			e.buf = byteOrder.AppendUint16(e.buf, uint16(v))
		}
	default:
		for _, v := range list {
			e.buf = byteOrder.AppendUint32(e.buf, uint32(v))
		}
	}
}

// Align pads the body to a multiple of n bytes.
func (e *Encoder) Align(n int) {
	e.started = true
	for len(e.buf)%n != 0 {
		e.buf = append(e.buf, 0)
	}
}

// Len is the encoded size so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Finish pads the request, fills in its length and returns the bytes.
func (e *Encoder) Finish() ([]byte, error) {
	e.Align(4)
	if len(e.buf) > MaxRequestLength {
		return nil, &ConnectionError{Code: ConnReqLenExceed}
	}
	byteOrder.PutUint16(e.buf[2:4], uint16(len(e.buf)/4))
	return e.buf, nil
}

// CheckCount fails when n list elements do not fit a length field of size
// bytes.
func CheckCount(list string, n, size int) error {
	if size >= 4 || n < 1<<(8*size) {
		return nil
	}
	return &ConnectionError{
		Code: ConnReqLenExceed,
		Err:  fmt.Errorf("list %s: %d elements overflow a %d-byte length field", list, n, size),
	}
}

// MatchCount fails when a list sharing its length field with counted has a
// different number of elements.
func MatchCount(list string, n int, counted string, want int) error {
	if n == want {
		return nil
	}
	return &UsageError{
		Op:     "encode",
		Reason: fmt.Sprintf("list %s has %d elements, %s has %d", list, n, counted, want),
	}
}
