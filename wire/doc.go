// Package wire is the runtime half of xcbind: a safe layer over an
// asynchronous, cookie-based protocol client.
//
// Ownership boundary:
// - cookie tracking (Tracker) and the request lifecycle (Request)
// - error capture policy (Checked, Unchecked) and protocol/connection errors
// - single-owner reply memory (Buffer)
// - zero-copy access to wire structs and trailing lists (View, field readers)
// - request encoding (Encoder)
//
// The transport session itself is a borrowed Conn; this package never
// connects, disconnects or dispatches events.
//
// A generated request handle resolves on first access and must be closed:
//
//	cookie, err := xproto.NewInternAtom(conn, false, "PRIMARY")
//	if err != nil {
//		return err
//	}
//	defer cookie.Close()
//	reply, err := cookie.Get()
package wire
