package wire

import "encoding/binary"

// Replies and requests use the byte order this client announces at setup.
var byteOrder = binary.LittleEndian

// Field readers used by generated Ref types. Reads past the end of b return
// the zero value, so a nil Ref reads as all zeros.

func Card8(b []byte, off int) uint8 {
	if off < 0 || len(b) < off+1 {
		return 0
	}
	return b[off]
}

func Card16(b []byte, off int) uint16 {
	if off < 0 || len(b) < off+2 {
		return 0
	}
	return byteOrder.Uint16(b[off:])
}

func Card32(b []byte, off int) uint32 {
	if off < 0 || len(b) < off+4 {
		return 0
	}
	return byteOrder.Uint32(b[off:])
}

func Int8(b []byte, off int) int8 {
	return int8(Card8(b, off))
}

func Int16(b []byte, off int) int16 {
	return int16(Card16(b, off))
}

func Int32(b []byte, off int) int32 {
	return int32(Card32(b, off))
}

func Bool(b []byte, off int) bool {
	return Card8(b, off) != 0
}

// Sub returns the size-byte region of b at off, or nil when b is too short.
func Sub(b []byte, off, size int) []byte {
	if off < 0 || size < 0 || len(b) < off+size {
		return nil
	}
	return b[off : off+size : off+size]
}

// Tail returns b from off onwards, or nil when off is past the end.
func Tail(b []byte, off int) []byte {
	if off < 0 || off > len(b) {
		return nil
	}
	return b[off:]
}

// Align rounds n up to a multiple of a (a power of two).
func Align(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}
