package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// DefaultPath is where xcbgen looks for its configuration.
const DefaultPath = "xcbgen.toml"

type GeneratorConfig struct {
	// Header is prepended to every module that does not set its own.
	Header  string         `toml:"header"`
	Modules []ModuleConfig `toml:"module"`
}

type ModuleConfig struct {
	Schema  string `toml:"schema"`
	Output  string `toml:"output"`
	Package string `toml:"package"`
	Header  string `toml:"header"`
}

// Load reads path, applies defaults and validates the result. Relative
// schema and output paths are resolved against the config file's directory.
func Load(path string) (GeneratorConfig, error) {
	var cfg GeneratorConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return GeneratorConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return GeneratorConfig{}, fmt.Errorf("config parse failed (%s): unknown keys: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	for i := range cfg.Modules {
		m := &cfg.Modules[i]
		applyDefaults(m)
		if md.IsDefined("header") && m.Header == "" {
			m.Header = cfg.Header
		}
		m.Schema = resolve(dir, m.Schema)
		m.Output = resolve(dir, m.Output)
	}
	if err := Validate(cfg); err != nil {
		return GeneratorConfig{}, err
	}
	log.Debug().Str("path", path).Int("modules", len(cfg.Modules)).Msg("config.Load")
	return cfg, nil
}

func applyDefaults(m *ModuleConfig) {
	if strings.TrimSpace(m.Output) == "" && m.Schema != "" {
		m.Output = DefaultOutput(m.Schema)
	}
}

// DefaultOutput derives the generated file name from a schema path:
// xproto/xproto.toml becomes xproto/xproto_gen.go.
func DefaultOutput(schema string) string {
	return strings.TrimSuffix(schema, filepath.Ext(schema)) + "_gen.go"
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func Validate(cfg GeneratorConfig) error {
	if len(cfg.Modules) == 0 {
		return fmt.Errorf("generator config has no modules")
	}
	outputs := make(map[string]int, len(cfg.Modules))
	for i, m := range cfg.Modules {
		if err := ValidateModule(m); err != nil {
			return fmt.Errorf("module[%d] invalid: %w", i, err)
		}
		if prev, ok := outputs[m.Output]; ok {
			return fmt.Errorf("module[%d] invalid: output %s already written by module[%d]", i, m.Output, prev)
		}
		outputs[m.Output] = i
	}
	return nil
}

func ValidateModule(m ModuleConfig) error {
	if strings.TrimSpace(m.Schema) == "" {
		return fmt.Errorf("schema is required")
	}
	if strings.TrimSpace(m.Output) == "" {
		return fmt.Errorf("output is required")
	}
	if filepath.Ext(m.Output) != ".go" {
		return fmt.Errorf("output must be a .go file: %s", m.Output)
	}
	if m.Package != "" && !isIdent(m.Package) {
		return fmt.Errorf("package is not an identifier: %s", m.Package)
	}
	return nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}
