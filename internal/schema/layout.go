package schema

// Slot is one field placed in a layout.
type Slot struct {
	Field Field
	Kind  FieldKind
	Type  TypeRef
	// Offset is the byte offset of a fixed, struct or pad field, or -1 for
	// a list.
	Offset int
	// Size is the field size, or the element size of a list.
	Size int
	// List is the ordinal of a list field among the entity's lists.
	List int
}

// Layout is the wire placement of a field list.
type Layout struct {
	Slots []Slot
	// Fixed is the end of the fixed-size prefix.
	Fixed int
	// ListStart is the offset of the first trailing list.
	ListStart int
	Lists     int
}

// Layout places fields after the header selected by origin. Fixed fields
// are packed in order; lists trail the fixed prefix.
func (m *Module) Layout(fields []Field, origin Origin) (Layout, error) {
	var l Layout
	off, body, dataFree := 0, 0, false
	switch origin {
	case OriginRequest:
		off, body, dataFree = 1, RequestHeaderLen, true
	case OriginReply:
		off, body, dataFree = 1, ReplyHeaderLen, true
	}

	for _, f := range fields {
		kind := m.Kind(f)
		s := Slot{Field: f, Kind: kind}
		switch kind {
		case KindPad:
			s.Size = f.Pad
		case KindList:
			t, ok := m.Resolve(f.List)
			if !ok {
				return Layout{}, ValidationError{Field: f.Name, Reason: "unknown list element type " + f.List}
			}
			size := t.Size(m)
			if size == 0 {
				return Layout{}, ValidationError{Field: f.Name, Reason: "variable-size list element " + f.List}
			}
			s.Type, s.Size, s.Offset, s.List = t, size, -1, l.Lists
			l.Lists++
			l.Slots = append(l.Slots, s)
			continue
		default:
			t, ok := m.Resolve(f.Type)
			if !ok {
				return Layout{}, ValidationError{Field: f.Name, Reason: "unknown type " + f.Type}
			}
			s.Type, s.Size = t, t.Size(m)
			if s.Size == 0 {
				return Layout{}, ValidationError{Field: f.Name, Reason: "variable-size struct field " + f.Type}
			}
		}
		if l.Lists > 0 {
			return Layout{}, ValidationError{Field: f.Name, Reason: "fixed field after list"}
		}
		if dataFree {
			dataFree = false
			if s.Size == 1 || kind == KindPad {
				s.Offset = 1
				l.Slots = append(l.Slots, s)
				off = body + s.Size - 1
				continue
			}
			off = body
		}
		s.Offset = off
		off += s.Size
		l.Slots = append(l.Slots, s)
	}
	if dataFree {
		off = body
	}

	l.Fixed = off
	l.ListStart = off
	if origin == OriginReply && l.ListStart < ReplyMinLen {
		l.ListStart = ReplyMinLen
	}
	return l, nil
}
