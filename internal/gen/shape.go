package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// Shape reduces Go source to its syntax tree structure: node kinds in
// traversal order, without names, literal values or comments. Sources that
// differ only in naming have equal shapes.
func Shape(src []byte) (string, error) {
	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("gen: shape: %w", err)
	}
	var b strings.Builder
	depth := 0
	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			depth--
			return false
		}
		fmt.Fprintf(&b, "%*s%T\n", depth, "", n)
		depth++
		return true
	})
	return b.String(), nil
}
