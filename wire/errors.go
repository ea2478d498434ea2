package wire

import (
	"errors"
	"fmt"
)

// Connection error codes, matching the values reported by XCB.
const (
	ConnError           = 1
	ConnExtNotSupported = 2
	ConnMemInsufficient = 3
	ConnReqLenExceed    = 4
	ConnParseErr        = 5
	ConnInvalidScreen   = 6
	ConnFDPassingFailed = 7
	ConnNoConnection    = 100
)

var (
	// ErrProtocol matches any *ProtocolError with errors.Is.
	ErrProtocol = &ProtocolError{}
	// ErrUsage matches any *UsageError with errors.Is.
	ErrUsage = &UsageError{}
	// ErrConnection matches any *ConnectionError with errors.Is.
	ErrConnection = &ConnectionError{}
)

// ConnectionError reports a broken transport session. The connection is
// unusable once one is observed.
type ConnectionError struct {
	Code int
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wire: connection error code=%d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("wire: connection error code=%d (%s)", e.Code, connErrorName(e.Code))
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

func connErrorName(code int) string {
	switch code {
	case ConnError:
		return "connection failed"
	case ConnExtNotSupported:
		return "extension not supported"
	case ConnMemInsufficient:
		return "insufficient memory"
	case ConnReqLenExceed:
		return "request length exceeded"
	case ConnParseErr:
		return "display string parse error"
	case ConnInvalidScreen:
		return "invalid screen"
	case ConnFDPassingFailed:
		return "fd passing failed"
	case ConnNoConnection:
		return "no connection"
	default:
		return "unknown"
	}
}

// CheckConn returns a *ConnectionError when c is nil or reports itself broken.
func CheckConn(c Conn) error {
	if c == nil {
		return &ConnectionError{Code: ConnNoConnection}
	}
	err := c.Err()
	if err == nil {
		return nil
	}
	var ce *ConnectionError
	if errors.As(err, &ce) {
		return err
	}
	return &ConnectionError{Code: ConnError, Err: err}
}

// ProtocolError is a per-request error delivered by the transport in place of
// a reply. It keeps the raw error buffer until released.
type ProtocolError struct {
	Code        uint8
	Sequence    uint16
	ResourceID  uint32
	MinorOpcode uint16
	MajorOpcode uint8

	buf *Buffer
}

// NewProtocolError decodes a 32-byte error packet. The error takes ownership
// of buf.
func NewProtocolError(buf *Buffer) *ProtocolError {
	b := buf.Bytes()
	return &ProtocolError{
		Code:        Card8(b, 1),
		Sequence:    Card16(b, 2),
		ResourceID:  Card32(b, 4),
		MinorOpcode: Card16(b, 8),
		MajorOpcode: Card8(b, 10),
		buf:         buf,
	}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf(
		"wire: protocol error %s (code=%d) major=%d minor=%d resource=%#x seq=%d",
		ErrorName(e.Code),
		e.Code,
		e.MajorOpcode,
		e.MinorOpcode,
		e.ResourceID,
		e.Sequence,
	)
}

func (e *ProtocolError) Is(target error) bool {
	_, ok := target.(*ProtocolError)
	return ok
}

// Bytes returns the raw error packet, or nil once released.
func (e *ProtocolError) Bytes() []byte {
	if e == nil {
		return nil
	}
	return e.buf.Bytes()
}

// Release frees the raw error packet. Decoded fields stay readable.
func (e *ProtocolError) Release() {
	if e == nil {
		return
	}
	e.buf.Release()
}

var coreErrorNames = [...]string{
	1:  "BadRequest",
	2:  "BadValue",
	3:  "BadWindow",
	4:  "BadPixmap",
	5:  "BadAtom",
	6:  "BadCursor",
	7:  "BadFont",
	8:  "BadMatch",
	9:  "BadDrawable",
	10: "BadAccess",
	11: "BadAlloc",
	12: "BadColormap",
	13: "BadGContext",
	14: "BadIDChoice",
	15: "BadName",
	16: "BadLength",
	17: "BadImplementation",
}

// ErrorName returns the core protocol name of an error code.
func ErrorName(code uint8) string {
	if int(code) < len(coreErrorNames) && coreErrorNames[code] != "" {
		return coreErrorNames[code]
	}
	return fmt.Sprintf("Error%d", code)
}

// UsageError reports caller misuse of a request handle.
type UsageError struct {
	Op     string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("wire: %s: %s", e.Op, e.Reason)
}

func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}
