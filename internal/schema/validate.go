package schema

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"

	"github.com/rs/zerolog/log"
)

type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	switch {
	case e.Entity == "":
		return fmt.Sprintf("schema: %s", e.Reason)
	case e.Field == "":
		return fmt.Sprintf("schema: entity=%s: %s", e.Entity, e.Reason)
	default:
		return fmt.Sprintf("schema: entity=%s field=%s: %s", e.Entity, e.Field, e.Reason)
	}
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks names, types, length expressions and layouts. The first
// problem found is returned.
func Validate(m *Module) error {
	log.Debug().
		Str("package", m.Package).
		Int("structs", len(m.Structs)).
		Int("requests", len(m.Requests)).
		Msg("schema.Validate")
	if err := validate(m); err != nil {
		log.Error().Err(err).Str("source", m.source).Msg("schema.Validate failed")
		return err
	}
	log.Info().Str("package", m.Package).Msg("schema.Validate ok")
	return nil
}

func validate(m *Module) error {
	if !token.IsIdentifier(m.Package) || token.IsKeyword(m.Package) {
		return ValidationError{Reason: fmt.Sprintf("invalid package name %q", m.Package)}
	}

	seen := make(map[string]bool)
	declare := func(name string) error {
		if !namePattern.MatchString(name) {
			return ValidationError{Entity: name, Reason: "name must be lower snake case"}
		}
		if seen[name] {
			return ValidationError{Entity: name, Reason: "duplicate name"}
		}
		seen[name] = true
		return nil
	}

	for _, td := range m.Typedefs {
		if err := declare(td.Name); err != nil {
			return err
		}
		s, ok := scalars[td.Type]
		if !ok || s.Name == "bool" {
			return ValidationError{Entity: td.Name, Reason: "typedef base must be an integer scalar, got " + td.Type}
		}
	}

	for i := range m.Structs {
		st := &m.Structs[i]
		if err := declare(st.Name); err != nil {
			return err
		}
		for _, f := range st.Fields {
			if m.Kind(f) != KindStruct {
				continue
			}
			if idx := m.structIndex(f.Type); idx >= i {
				return ValidationError{Entity: st.Name, Field: f.Name, Reason: "struct must be declared before use"}
			}
		}
		if err := m.validateFields(st.Name, st.Fields, OriginStruct); err != nil {
			return err
		}
	}

	for i := range m.Requests {
		req := &m.Requests[i]
		if err := declare(req.Name); err != nil {
			return err
		}
		if req.Opcode < 1 || req.Opcode > 255 {
			return ValidationError{Entity: req.Name, Reason: fmt.Sprintf("opcode %d out of range", req.Opcode)}
		}
		if err := m.validateRequestFields(req); err != nil {
			return err
		}
		if err := m.validateFields(req.Name, req.Fields, OriginRequest); err != nil {
			return err
		}
		if req.Reply != nil {
			if err := m.validateFields(req.Name+" reply", req.Reply.Fields, OriginReply); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Module) structIndex(name string) int {
	for i := range m.Structs {
		if m.Structs[i].Name == name {
			return i
		}
	}
	return -1
}

func (m *Module) validateFields(entity string, fields []Field, origin Origin) error {
	fixed := make(map[string]bool)
	names := make(map[string]bool)
	for _, f := range fields {
		set := 0
		for _, present := range []bool{f.Type != "", f.List != "", f.Pad != 0} {
			if present {
				set++
			}
		}
		if set != 1 {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "field must set exactly one of type, list, pad"}
		}
		if f.Pad < 0 {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "negative pad"}
		}
		if f.Pad > 0 {
			continue
		}
		if !namePattern.MatchString(f.Name) {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "field name must be lower snake case"}
		}
		if names[f.Name] {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "duplicate field"}
		}
		names[f.Name] = true

		if f.List == "" {
			if f.Length != "" {
				return ValidationError{Entity: entity, Field: f.Name, Reason: "length is only valid on lists"}
			}
			if t, ok := m.Resolve(f.Type); ok && t.Struct == nil && t.Scalar.Name != "bool" {
				fixed[f.Name] = true
			}
			continue
		}
		if f.Length == "" {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "list requires a length expression"}
		}
		if f.List == "bool" {
			return ValidationError{Entity: entity, Field: f.Name, Reason: "bool lists are not supported"}
		}
		if err := checkLength(f.Length, fixed); err != nil {
			return ValidationError{Entity: entity, Field: f.Name, Reason: err.Error()}
		}
	}
	if _, err := m.Layout(fields, origin); err != nil {
		var ve ValidationError
		if errors.As(err, &ve) {
			ve.Entity = entity
			return ve
		}
		return err
	}
	return nil
}

// validateRequestFields applies the rules for encodable fields: scalar lists
// only, each counted by an earlier integer field.
func (m *Module) validateRequestFields(req *Request) error {
	for _, f := range req.Fields {
		switch m.Kind(f) {
		case KindStruct:
			return ValidationError{Entity: req.Name, Field: f.Name, Reason: "struct fields are not supported in requests"}
		case KindList:
			t, ok := m.Resolve(f.List)
			if !ok || t.Struct != nil || t.Scalar.Name == "bool" {
				return ValidationError{Entity: req.Name, Field: f.Name, Reason: "request lists must hold integer scalars"}
			}
			if !token.IsIdentifier(f.Length) {
				return ValidationError{Entity: req.Name, Field: f.Name, Reason: "request list length must name a field"}
			}
		}
	}
	return nil
}

// checkLength accepts integer arithmetic over literals and earlier integer
// fields.
func checkLength(expr string, fixed map[string]bool) error {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("invalid length expression %q: %v", expr, err)
	}
	var bad error
	ast.Inspect(node, func(n ast.Node) bool {
		if bad != nil {
			return false
		}
		switch x := n.(type) {
		case nil, *ast.ParenExpr:
		case *ast.Ident:
			if !fixed[x.Name] {
				bad = fmt.Errorf("length expression %q references unknown field %s", expr, x.Name)
			}
		case *ast.BasicLit:
			if x.Kind != token.INT {
				bad = fmt.Errorf("length expression %q uses non-integer literal %s", expr, x.Value)
			}
		case *ast.BinaryExpr:
			switch x.Op {
			case token.ADD, token.SUB, token.MUL, token.QUO:
			default:
				bad = fmt.Errorf("length expression %q uses operator %s", expr, x.Op)
			}
		default:
			bad = fmt.Errorf("unsupported length expression %q", expr)
		}
		return bad == nil
	})
	return bad
}
