// Package schema describes protocol entities for code generation: wire
// structs, requests and their replies, as ordered field lists.
package schema

import "fmt"

// Origin selects the header a field layout starts after.
type Origin uint8

const (
	// OriginStruct lays fields out from offset 0.
	OriginStruct Origin = iota
	// OriginRequest reserves the opcode byte; the first 1-byte field fills
	// the data byte and the body starts at offset 4.
	OriginRequest
	// OriginReply reserves the response type byte; the first 1-byte field
	// fills byte 1 and the body starts at offset 8.
	OriginReply
)

const (
	RequestHeaderLen = 4
	ReplyHeaderLen   = 8
	// ReplyMinLen is the smallest reply packet; trailing lists never start
	// before it.
	ReplyMinLen = 32
)

type FieldKind uint8

const (
	KindFixed FieldKind = iota + 1
	KindStruct
	KindList
	KindPad
)

func (k FieldKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindStruct:
		return "struct"
	case KindList:
		return "list"
	case KindPad:
		return "pad"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Scalar is a built-in wire type.
type Scalar struct {
	Name string
	Size int
	// Reader is the wire field reader (Card8, Int16, Bool, ...).
	Reader string
	// GoType is the Go type the reader returns.
	GoType string
	Signed bool
}

var scalars = map[string]Scalar{
	"card8":  {Name: "card8", Size: 1, Reader: "Card8", GoType: "uint8"},
	"card16": {Name: "card16", Size: 2, Reader: "Card16", GoType: "uint16"},
	"card32": {Name: "card32", Size: 4, Reader: "Card32", GoType: "uint32"},
	"int8":   {Name: "int8", Size: 1, Reader: "Int8", GoType: "int8", Signed: true},
	"int16":  {Name: "int16", Size: 2, Reader: "Int16", GoType: "int16", Signed: true},
	"int32":  {Name: "int32", Size: 4, Reader: "Int32", GoType: "int32", Signed: true},
	"bool":   {Name: "bool", Size: 1, Reader: "Bool", GoType: "bool"},
	"byte":   {Name: "byte", Size: 1, Reader: "Card8", GoType: "byte"},
	"char":   {Name: "char", Size: 1, Reader: "Card8", GoType: "byte"},
}

// LookupScalar returns the built-in scalar named name.
func LookupScalar(name string) (Scalar, bool) {
	s, ok := scalars[name]
	return s, ok
}

// Module is one schema file. It becomes one generated Go source file.
type Module struct {
	Package  string    `toml:"package"`
	Header   string    `toml:"header"`
	Typedefs []Typedef `toml:"typedef"`
	Structs  []Entity  `toml:"struct"`
	Requests []Request `toml:"request"`

	source string
}

// Source is the path the module was loaded from, if any.
func (m *Module) Source() string { return m.source }

// Typedef names a scalar type.
type Typedef struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Entity is a wire struct or a reply: an ordered field list.
type Entity struct {
	Name   string  `toml:"name"`
	Doc    string  `toml:"doc"`
	Fields []Field `toml:"fields"`
}

// Request is a protocol request. Checked selects the error policy of the
// primary handle; Variant also generates the opposite policy under a
// Checked/Unchecked suffix.
type Request struct {
	Name    string  `toml:"name"`
	Doc     string  `toml:"doc"`
	Opcode  int     `toml:"opcode"`
	Checked bool    `toml:"checked"`
	Variant bool    `toml:"variant"`
	Fields  []Field `toml:"fields"`
	Reply   *Entity `toml:"reply"`
}

// Field is one entry of a field list. Exactly one of Type, List or Pad is
// set: Type names a scalar, typedef or struct; List names the element type
// of a trailing list whose element count is the Length expression; Pad is
// a run of unused bytes.
type Field struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	List   string `toml:"list"`
	Length string `toml:"length"`
	Pad    int    `toml:"pad"`
}

// TypeRef is a resolved field or element type.
type TypeRef struct {
	// Scalar is the wire scalar, or the base scalar of a typedef.
	Scalar  Scalar
	Typedef *Typedef
	Struct  *Entity
}

// Size is the fixed wire size, or 0 for a variable-size struct.
func (t TypeRef) Size(m *Module) int {
	if t.Struct != nil {
		l, err := m.Layout(t.Struct.Fields, OriginStruct)
		if err != nil || l.Lists > 0 {
			return 0
		}
		return l.Fixed
	}
	return t.Scalar.Size
}

// Struct returns the struct entity named name.
func (m *Module) Struct(name string) *Entity {
	for i := range m.Structs {
		if m.Structs[i].Name == name {
			return &m.Structs[i]
		}
	}
	return nil
}

// Request returns the request entity named name.
func (m *Module) Request(name string) *Request {
	for i := range m.Requests {
		if m.Requests[i].Name == name {
			return &m.Requests[i]
		}
	}
	return nil
}

func (m *Module) typedef(name string) *Typedef {
	for i := range m.Typedefs {
		if m.Typedefs[i].Name == name {
			return &m.Typedefs[i]
		}
	}
	return nil
}

// Resolve looks up a type name among scalars, typedefs and structs.
func (m *Module) Resolve(name string) (TypeRef, bool) {
	if s, ok := scalars[name]; ok {
		return TypeRef{Scalar: s}, true
	}
	if td := m.typedef(name); td != nil {
		s, ok := scalars[td.Type]
		if !ok {
			return TypeRef{}, false
		}
		return TypeRef{Scalar: s, Typedef: td}, true
	}
	if st := m.Struct(name); st != nil {
		return TypeRef{Struct: st}, true
	}
	return TypeRef{}, false
}

// Kind classifies f.
func (m *Module) Kind(f Field) FieldKind {
	switch {
	case f.Pad > 0:
		return KindPad
	case f.List != "":
		return KindList
	case m.Struct(f.Type) != nil:
		return KindStruct
	default:
		return KindFixed
	}
}
