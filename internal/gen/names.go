package gen

import (
	"go/token"
	"strings"
)

var initialisms = map[string]string{
	"id":  "ID",
	"rgb": "RGB",
}

// Parameter names that would collide with locals of generated functions.
var paramFixes = map[string]bool{
	"c":    true,
	"e":    true,
	"data": true,
	"err":  true,
	"req":  true,
	"len":  true,
	"wire": true,
}

// Method names already taken by every Ref.
var methodFixes = map[string]bool{
	"IsNil": true,
	"Bytes": true,
}

// exportName turns a snake_case schema name into an exported Go name.
func exportName(snake string) string {
	var b strings.Builder
	for _, part := range strings.Split(snake, "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	for _, up := range []string{"ID", "RGB"} {
		if strings.HasPrefix(name, up) {
			return strings.ToLower(up) + name[len(up):]
		}
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// paramName turns a field name into a parameter name, suffixing Go keywords
// and reserved locals with an underscore.
func paramName(snake string) string {
	name := lowerFirst(exportName(snake))
	if token.IsKeyword(name) || paramFixes[name] {
		return name + "_"
	}
	return name
}

func methodName(snake string) string {
	name := exportName(snake)
	if methodFixes[name] {
		return name + "_"
	}
	return name
}
