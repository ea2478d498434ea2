package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// rewriteLength turns a schema length expression into Go source, replacing
// each field name with the read expression in reads.
func rewriteLength(expr string, reads map[string]string) (string, error) {
	root, err := parser.ParseExpr(expr)
	if err != nil {
		return "", fmt.Errorf("gen: length expression %q: %w", expr, err)
	}
	var missing string
	out := astutil.Apply(root, nil, func(c *astutil.Cursor) bool {
		id, ok := c.Node().(*ast.Ident)
		if !ok {
			return true
		}
		read, ok := reads[id.Name]
		if !ok {
			missing = id.Name
			return false
		}
		repl, err := parser.ParseExpr(read)
		if err != nil {
			missing = id.Name
			return false
		}
		c.Replace(repl)
		return true
	})
	if missing != "" {
		return "", fmt.Errorf("gen: length expression %q: no readable field %s", expr, missing)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), out); err != nil {
		return "", fmt.Errorf("gen: length expression %q: %w", expr, err)
	}
	return buf.String(), nil
}
