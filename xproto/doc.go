// Package xproto binds a subset of the core X11 protocol on top of wire.
// The request handles and reply views in xproto_gen.go are generated from
// xproto.toml.
//
// Reply views borrow the handle's reply buffer and are only valid until the
// handle is closed or the buffer is taken and released.
package xproto

//go:generate go run ../cmd/xcbgen -schema xproto.toml -output xproto_gen.go
