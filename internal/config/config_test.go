package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/xcbind/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
header = "shared header"

[[module]]
schema = "xproto/xproto.toml"

[[module]]
schema = "ext/shape.toml"
output = "ext/shape.go"
package = "shape"
header = "own header"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	dir := filepath.Dir(path)
	first := cfg.Modules[0]
	if first.Output != filepath.Join(dir, "xproto", "xproto_gen.go") {
		t.Fatalf("unexpected default output: %s", first.Output)
	}
	if first.Schema != filepath.Join(dir, "xproto", "xproto.toml") || first.Header != "shared header" {
		t.Fatalf("unexpected first module: %+v", first)
	}
	second := cfg.Modules[1]
	if second.Header != "own header" || second.Package != "shape" {
		t.Fatalf("unexpected second module: %+v", second)
	}
	opts := second.Options()
	if opts.Filename != "shape.go" || opts.Package != "shape" || opts.Header != "own header" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
[[module]]
schema = "a.toml"
ouput = "a.go"
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown keys: module.ouput") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	testlog.Start(t)
	cases := map[string]GeneratorConfig{
		"no modules":  {},
		"no schema":   {Modules: []ModuleConfig{{Output: "a.go"}}},
		"not go":      {Modules: []ModuleConfig{{Schema: "a.toml", Output: "a.txt"}}},
		"bad package": {Modules: []ModuleConfig{{Schema: "a.toml", Output: "a.go", Package: "x-proto"}}},
		"dup output":  {Modules: []ModuleConfig{{Schema: "a.toml", Output: "a.go"}, {Schema: "b.toml", Output: "a.go"}}},
	}
	for name, cfg := range cases {
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	ok := GeneratorConfig{Modules: []ModuleConfig{{Schema: "a.toml", Output: "a.go", Package: "xproto"}}}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if len(cfg.Modules) != 1 || !strings.HasSuffix(cfg.Modules[0].Output, "xproto_gen.go") {
		t.Fatalf("unexpected template modules: %+v", cfg.Modules)
	}
}
