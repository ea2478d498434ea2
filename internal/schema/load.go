package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Load decodes and validates the schema file at path. Unknown keys are
// rejected.
func Load(path string) (*Module, error) {
	var m Module
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("schema: decode %s: %w", path, err)
	}
	m.source = path
	return finish(&m, md)
}

// Parse decodes and validates schema source held in memory.
func Parse(name, src string) (*Module, error) {
	var m Module
	md, err := toml.Decode(src, &m)
	if err != nil {
		return nil, fmt.Errorf("schema: decode %s: %w", name, err)
	}
	m.source = name
	return finish(&m, md)
}

func finish(m *Module, md toml.MetaData) (*Module, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("schema: %s: unknown keys: %s", m.source, strings.Join(keys, ", "))
	}
	log.Debug().
		Str("source", m.source).
		Int("typedefs", len(m.Typedefs)).
		Int("structs", len(m.Structs)).
		Int("requests", len(m.Requests)).
		Msg("schema.Load decoded")
	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}
