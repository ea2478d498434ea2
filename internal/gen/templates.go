package gen

const fileTemplate = `// Code generated by xcbgen{{with .Source}} from {{base .}}{{end}}. DO NOT EDIT.
{{with .Header}}
{{comment .}}
{{end}}
package {{.Package}}

import "github.com/danmuck/xcbind/wire"
{{range .Typedefs}}
type {{.Name}} {{.Base}}
{{end}}
{{- range .Refs}}{{template "ref" .}}{{end}}
{{- range .Requests}}{{template "request" .}}{{end}}
`

const refTemplate = `{{define "ref"}}
// {{.Name}} reads a wire {{.Schema}} {{.What}} in place. A nil {{.Name}} reads as zeros.
{{- with .Doc}}
//
{{comment .}}
{{- end}}
type {{.Name}} struct {
	ptr []byte
}
{{if .Size}}
// {{.Name}}Size is the wire size of {{.Name}}.
const {{.Name}}Size = {{.Size}}
{{end}}
func New{{.Name}}(b []byte) {{.Name}} { return {{.Name}}{ptr: b} }

func (r {{.Name}}) IsNil() bool { return r.ptr == nil }

func (r {{.Name}}) Bytes() []byte { return r.ptr }
{{range .Methods}}
func (r {{$.Name}}) {{.Name}}() {{.Type}} { return {{.Expr}} }
{{end}}
{{- range .Lists}}
func {{.Offset}}(b []byte) int { return {{.OffsetExpr}} }

func {{.Length}}(b []byte) int { return {{.LengthExpr}} }
{{end}}
{{- end}}`

const requestTemplate = `{{define "request"}}
// {{.Opcode}} is the major opcode of {{.Name}}.
const {{.Opcode}} = {{.Value}}

func encode{{.Name}}({{.Params}}) ([]byte, error) {
{{- range .Checks}}
	if err := {{.}}; err != nil {
		return nil, err
	}
{{- end}}
	e := wire.NewEncoder({{.Opcode}})
{{- range .Encode}}
	{{.}}
{{- end}}
	return e.Finish()
}
{{range .Handles}}{{template "handle" .}}{{end}}
{{- end}}`

const handleTemplate = `{{define "handle"}}
// {{.Name}} is a pending {{.Request.Schema}} request. It resolves on first
// access and must be closed.
{{- with .Request.Doc}}
//
{{comment .}}
{{- end}}
type {{.Name}} struct {
	req *wire.Request[{{.Policy}}]
}

// New{{.Name}} submits {{.Request.Schema}} on c.
func New{{.Name}}(c wire.Conn{{with .Request.Params}}, {{.}}{{end}}) (*{{.Name}}, error) {
	data, err := encode{{.Request.Name}}({{.Request.Args}})
	if err != nil {
		return nil, err
	}
	req, err := wire.Submit[{{.Policy}}](c, data, {{.Request.HasReply}})
	if err != nil {
		return nil, err
	}
	return &{{.Name}}{req: req}, nil
}

// New{{.Name}}Default submits {{.Request.Schema}} on the default connection.
func New{{.Name}}Default({{.Request.Params}}) (*{{.Name}}, error) {
	return New{{.Name}}(wire.Default(){{with .Request.Args}}, {{.}}{{end}})
}
{{with .Request.Reply}}
// Reply resolves the request and returns the held reply. It never fails; the
// result is nil when no reply is held.
func (h *{{$.Name}}) Reply() {{.}} { return New{{.}}(h.req.Reply().Bytes()) }

// TakeReply resolves the request and hands the reply buffer to the caller.
func (h *{{$.Name}}) TakeReply() *wire.Buffer { return h.req.TakeReply() }

// Get resolves the request and returns the reply, or the protocol,
// connection or usage error preventing one.
func (h *{{$.Name}}) Get() ({{.}}, error) {
	b, err := h.req.Get()
	if err != nil {
		return {{.}}{}, err
	}
	return New{{.}}(b.Bytes()), nil
}
{{end}}
{{- if .Checked}}
// Err resolves the request and returns the captured protocol error, if any.
func (h *{{.Name}}) Err() error { return h.req.Err() }

// TakeError resolves the request and hands the captured error to the caller.
func (h *{{.Name}}) TakeError() *wire.ProtocolError { return h.req.TakeError() }
{{end}}
func (h *{{.Name}}) Success() bool { return h.req.Success() }

func (h *{{.Name}}) Done() bool { return h.req.Done() }

func (h *{{.Name}}) Discard() { h.req.Discard() }

// Close discards a pending request and releases what the handle still owns.
func (h *{{.Name}}) Close() { h.req.Close() }

// Move hands the request to a new handle. h is left inert.
func (h *{{.Name}}) Move() *{{.Name}} { return &{{.Name}}{req: h.req.Move()} }

func (h *{{.Name}}) Cookie() wire.Cookie { return h.req.Cookie() }

func (h *{{.Name}}) Conn() wire.Conn { return h.req.Conn() }
{{end}}`
