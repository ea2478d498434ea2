package config

import (
	"path/filepath"

	"github.com/danmuck/xcbind/internal/gen"
)

// Options maps a module entry onto generator options.
func (m ModuleConfig) Options() gen.Options {
	return gen.Options{
		Package:  m.Package,
		Header:   m.Header,
		Filename: filepath.Base(m.Output),
	}
}
