package config

import (
	"fmt"
	"os"
)

func Template() string { return generatorTemplate }

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(generatorTemplate), 0o644)
}

const generatorTemplate = `# xcbgen modules; paths are relative to this file.
header = "Core X11 protocol subset: atoms, fonts, input focus and modifier mapping."

[[module]]
schema = "xproto/xproto.toml"
output = "xproto/xproto_gen.go"
`
