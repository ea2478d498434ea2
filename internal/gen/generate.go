// Package gen expands schema modules into Go source: one Ref type per struct
// and reply, and one encoder plus handle types per request.
package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/danmuck/xcbind/internal/schema"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

var templates = template.Must(
	template.New("file").
		Funcs(template.FuncMap{
			"comment": comment,
			"base":    filepath.Base,
		}).
		Parse(fileTemplate + refTemplate + requestTemplate + handleTemplate),
)

// Options adjust one generation run.
type Options struct {
	// Package overrides the schema package name.
	Package string
	// Header overrides the schema header comment.
	Header string
	// Filename is the output path, used to resolve imports.
	Filename string
}

// Generate validates m and renders it as formatted Go source.
func Generate(m *schema.Module, opts Options) ([]byte, error) {
	if err := schema.Validate(m); err != nil {
		return nil, err
	}
	file, err := Expand(m)
	if err != nil {
		return nil, err
	}
	if opts.Package != "" {
		file.Package = opts.Package
	}
	if opts.Header != "" {
		file.Header = opts.Header
	}
	return Render(file, opts.Filename)
}

// Render executes the templates for file and formats the result.
func Render(file *File, filename string) ([]byte, error) {
	var raw bytes.Buffer
	if err := templates.ExecuteTemplate(&raw, "file", file); err != nil {
		return nil, fmt.Errorf("gen: render %s: %w", file.Package, err)
	}
	src, err := imports.Process(filename, raw.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		log.Error().Err(err).Str("package", file.Package).Msg("gen.Render format failed")
		return nil, fmt.Errorf("gen: format %s: %w", file.Package, err)
	}
	log.Info().
		Str("package", file.Package).
		Int("refs", len(file.Refs)).
		Int("requests", len(file.Requests)).
		Int("bytes", len(src)).
		Msg("gen.Render ok")
	return src, nil
}

func comment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(line), " ")
	}
	return strings.Join(lines, "\n")
}
