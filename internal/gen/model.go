package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/xcbind/internal/schema"
	"github.com/rs/zerolog/log"
)

// File is the expanded model of one generated source file.
type File struct {
	Package  string
	Source   string
	Header   string
	Typedefs []Typedef
	Refs     []Ref
	Requests []Request
}

type Typedef struct {
	Name string
	Base string
}

type MethodKind uint8

const (
	MethodScalar MethodKind = iota + 1
	MethodStruct
	MethodList
)

func (k MethodKind) String() string {
	switch k {
	case MethodScalar:
		return "scalar"
	case MethodStruct:
		return "struct"
	case MethodList:
		return "list"
	default:
		return "unknown"
	}
}

// Ref is a generated read-only view type over a struct or reply.
type Ref struct {
	Name   string
	Schema string
	What   string
	Doc    string
	// Size is the fixed wire size, or 0 when the entity has lists.
	Size    int
	Methods []Method
	Lists   []List
}

// Method is one field accessor of a Ref.
type Method struct {
	Name  string
	Field string
	Kind  MethodKind
	Type  string
	Expr  string
	// Elem is the element type of a list accessor.
	Elem string
	// Length is the length accessor a list accessor counts with.
	Length string
}

// List holds the offset and length accessors of one trailing list.
type List struct {
	Offset     string
	OffsetExpr string
	Length     string
	LengthExpr string
}

// Request is a generated request encoder plus its handles.
type Request struct {
	Name     string
	Schema   string
	Doc      string
	Opcode   string
	Value    int
	Params   string
	Args     string
	Checks   []string
	Encode   []string
	HasReply bool
	Reply    string
	Handles  []Handle
}

// Handle is one policy variant of a request handle.
type Handle struct {
	Name    string
	Checked bool
	Request *Request
}

// Policy is the wire policy type parameter of the handle.
func (h Handle) Policy() string {
	if h.Checked {
		return "wire.Checked"
	}
	return "wire.Unchecked"
}

// Expand builds the file model of a validated module.
func Expand(m *schema.Module) (*File, error) {
	f := &File{Package: m.Package, Source: m.Source(), Header: m.Header}
	names := newNameSet()

	for _, td := range m.Typedefs {
		s, _ := schema.LookupScalar(td.Type)
		t := Typedef{Name: exportName(td.Name), Base: s.GoType}
		if err := names.add(t.Name); err != nil {
			return nil, err
		}
		f.Typedefs = append(f.Typedefs, t)
	}

	for i := range m.Structs {
		st := &m.Structs[i]
		ref, err := expandRef(m, exportName(st.Name), st.Name, "struct", st.Doc, st.Fields, schema.OriginStruct)
		if err != nil {
			return nil, err
		}
		if err := names.add(ref.Name, "New"+ref.Name, ref.Name+"Size"); err != nil {
			return nil, err
		}
		f.Refs = append(f.Refs, ref)
	}

	for i := range m.Requests {
		req, reply, err := expandRequest(m, &m.Requests[i])
		if err != nil {
			return nil, err
		}
		if reply != nil {
			if err := names.add(reply.Name, "New"+reply.Name); err != nil {
				return nil, err
			}
			f.Refs = append(f.Refs, *reply)
		}
		if err := names.add(req.Opcode, "encode"+req.Name); err != nil {
			return nil, err
		}
		for _, h := range req.Handles {
			if err := names.add(h.Name, "New"+h.Name, "New"+h.Name+"Default"); err != nil {
				return nil, err
			}
		}
		f.Requests = append(f.Requests, req)
	}
	for i := range f.Requests {
		for j := range f.Requests[i].Handles {
			f.Requests[i].Handles[j].Request = &f.Requests[i]
		}
	}
	return f, nil
}

func expandRef(m *schema.Module, name, schemaName, what, doc string, fields []schema.Field, origin schema.Origin) (Ref, error) {
	layout, err := m.Layout(fields, origin)
	if err != nil {
		return Ref{}, err
	}
	ref := Ref{Name: name, Schema: schemaName, What: what, Doc: doc}
	if layout.Lists == 0 && origin == schema.OriginStruct {
		ref.Size = layout.Fixed
	}

	reads := make(map[string]string)
	for _, s := range layout.Slots {
		switch s.Kind {
		case schema.KindFixed:
			ref.Methods = append(ref.Methods, Method{
				Name:  methodName(s.Field.Name),
				Field: s.Field.Name,
				Kind:  MethodScalar,
				Type:  goType(s.Type),
				Expr:  readExpr(s.Type, "r.ptr", s.Offset),
			})
			if s.Type.Scalar.Name != "bool" {
				reads[s.Field.Name] = fmt.Sprintf("int(wire.%s(b, %d))", s.Type.Scalar.Reader, s.Offset)
			}
		case schema.KindStruct:
			nested := exportName(s.Type.Struct.Name)
			ref.Methods = append(ref.Methods, Method{
				Name:  methodName(s.Field.Name),
				Field: s.Field.Name,
				Kind:  MethodStruct,
				Type:  nested,
				Expr:  fmt.Sprintf("New%s(wire.Sub(r.ptr, %d, %sSize))", nested, s.Offset, nested),
			})
		case schema.KindList:
			list, method, err := expandList(ref, layout, s, reads)
			if err != nil {
				return Ref{}, err
			}
			ref.Lists = append(ref.Lists, list)
			ref.Methods = append(ref.Methods, method)
		}
	}
	log.Debug().
		Str("entity", schemaName).
		Str("ref", name).
		Int("methods", len(ref.Methods)).
		Int("lists", len(ref.Lists)).
		Msg("gen.Expand ref")
	return ref, nil
}

func expandList(ref Ref, layout schema.Layout, s schema.Slot, reads map[string]string) (List, Method, error) {
	prefix := lowerFirst(ref.Name) + exportName(s.Field.Name)
	list := List{Offset: prefix + "Offset", Length: prefix + "Length"}
	if s.List == 0 {
		list.OffsetExpr = strconv.Itoa(layout.ListStart)
	} else {
		prev := ref.Lists[s.List-1]
		prevSize := 0
		for _, p := range layout.Slots {
			if p.Kind == schema.KindList && p.List == s.List-1 {
				prevSize = p.Size
			}
		}
		list.OffsetExpr = fmt.Sprintf("wire.Align(%s(b)+%s(b)*%d, 4)", prev.Offset, prev.Length, prevSize)
	}
	expr, err := rewriteLength(s.Field.Length, reads)
	if err != nil {
		return List{}, Method{}, err
	}
	list.LengthExpr = expr

	base := fmt.Sprintf("wire.Tail(r.ptr, %s(r.ptr))", list.Offset)
	count := list.Length + "(r.ptr)"
	method := Method{
		Name:   methodName(s.Field.Name),
		Field:  s.Field.Name,
		Kind:   MethodList,
		Length: list.Length,
	}
	switch {
	case s.Type.Struct != nil:
		elem := exportName(s.Type.Struct.Name)
		method.Elem = elem
		method.Type = "wire.View[" + elem + "]"
		method.Expr = fmt.Sprintf("wire.NewView(%s, %s, %sSize, New%s)", base, count, elem, elem)
	case s.Type.Typedef == nil && s.Type.Scalar.Name == "char":
		method.Elem = "byte"
		method.Type = "wire.String8"
		method.Expr = fmt.Sprintf("wire.NewString8(%s, %s)", base, count)
	default:
		elem := goType(s.Type)
		method.Elem = elem
		method.Type = "wire.View[" + elem + "]"
		method.Expr = fmt.Sprintf("wire.Scalars[%s](%s, %s)", elem, base, count)
	}
	return list, method, nil
}

func expandRequest(m *schema.Module, r *schema.Request) (Request, *Ref, error) {
	req := Request{
		Name:     exportName(r.Name),
		Schema:   r.Name,
		Doc:      r.Doc,
		Value:    r.Opcode,
		HasReply: r.Reply != nil,
	}
	req.Opcode = req.Name + "Opcode"

	layout, err := m.Layout(r.Fields, schema.OriginRequest)
	if err != nil {
		return Request{}, nil, err
	}
	counted := make(map[string]string)
	for _, s := range layout.Slots {
		if s.Kind == schema.KindList {
			p := paramName(s.Field.Name)
			first, ok := counted[s.Field.Length]
			if !ok {
				counted[s.Field.Length] = p
				continue
			}
			req.Checks = append(req.Checks, fmt.Sprintf("wire.MatchCount(%q, len(%s), %q, len(%s))", p, p, first, first))
		}
	}

	var params, args []string
	for _, s := range layout.Slots {
		switch s.Kind {
		case schema.KindPad:
			req.Encode = append(req.Encode, fmt.Sprintf("e.Pad(%d)", s.Size))
		case schema.KindFixed:
			value := ""
			if list, ok := counted[s.Field.Name]; ok {
				value = fmt.Sprintf("%s(len(%s))", s.Type.Scalar.GoType, list)
				req.Checks = append(req.Checks, fmt.Sprintf("wire.CheckCount(%q, len(%s), %d)", list, list, s.Size))
			} else {
				p := paramName(s.Field.Name)
				params = append(params, p+" "+goType(s.Type))
				args = append(args, p)
				value = p
				if s.Type.Typedef != nil {
					value = fmt.Sprintf("%s(%s)", s.Type.Scalar.GoType, p)
				}
			}
			req.Encode = append(req.Encode, fmt.Sprintf("e.Put%s(%s)", s.Type.Scalar.Reader, value))
		case schema.KindList:
			p := paramName(s.Field.Name)
			args = append(args, p)
			if s.Type.Typedef == nil && s.Type.Scalar.Name == "char" {
				params = append(params, p+" string")
				req.Encode = append(req.Encode, fmt.Sprintf("e.PutString(%s)", p))
				continue
			}
			params = append(params, p+" []"+goType(s.Type))
			req.Encode = append(req.Encode, fmt.Sprintf("wire.PutList(e, %s)", p))
		}
	}
	req.Params = strings.Join(params, ", ")
	req.Args = strings.Join(args, ", ")

	var reply *Ref
	if r.Reply != nil {
		ref, err := expandRef(m, req.Name+"Reply", r.Name, "reply", r.Reply.Doc, r.Reply.Fields, schema.OriginReply)
		if err != nil {
			return Request{}, nil, err
		}
		reply = &ref
		req.Reply = ref.Name
	}

	req.Handles = []Handle{{Name: req.Name, Checked: r.Checked}}
	if r.Variant {
		suffix := "Checked"
		if r.Checked {
			suffix = "Unchecked"
		}
		req.Handles = append(req.Handles, Handle{Name: req.Name + suffix, Checked: !r.Checked})
	}
	log.Debug().
		Str("entity", r.Name).
		Int("opcode", r.Opcode).
		Bool("reply", req.HasReply).
		Int("handles", len(req.Handles)).
		Msg("gen.Expand request")
	return req, reply, nil
}

func goType(t schema.TypeRef) string {
	switch {
	case t.Struct != nil:
		return exportName(t.Struct.Name)
	case t.Typedef != nil:
		return exportName(t.Typedef.Name)
	default:
		return t.Scalar.GoType
	}
}

func readExpr(t schema.TypeRef, buf string, off int) string {
	read := fmt.Sprintf("wire.%s(%s, %d)", t.Scalar.Reader, buf, off)
	if t.Typedef != nil {
		return fmt.Sprintf("%s(%s)", exportName(t.Typedef.Name), read)
	}
	return read
}

type nameSet map[string]bool

func newNameSet() nameSet { return make(nameSet) }

func (s nameSet) add(names ...string) error {
	for _, n := range names {
		if s[n] {
			return fmt.Errorf("gen: name %s generated twice", n)
		}
		s[n] = true
	}
	return nil
}
