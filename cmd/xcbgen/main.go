// Command xcbgen renders Go bindings from protocol schema files.
//
//	xcbgen                                 # every module in xcbgen.toml
//	xcbgen -schema xproto.toml             # one schema, output beside it
//	xcbgen -validate                       # check config and schemas only
//	xcbgen -init                           # write a starter xcbgen.toml
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/xcbind/internal/config"
	"github.com/danmuck/xcbind/internal/gen"
	"github.com/danmuck/xcbind/internal/logging"
	"github.com/danmuck/xcbind/internal/schema"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("xcbgen failed")
	}
}

type options struct {
	config   string
	schema   string
	output   string
	pkg      string
	header   string
	validate bool
	init     bool
	force    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("xcbgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", config.DefaultPath, "generator config path")
	fs.StringVar(&o.schema, "schema", "", "generate a single schema file instead of the config modules")
	fs.StringVar(&o.output, "output", "", "output path for -schema (defaults to <schema>_gen.go)")
	fs.StringVar(&o.pkg, "package", "", "package name override for -schema")
	fs.StringVar(&o.header, "header", "", "header comment override for -schema")
	fs.BoolVar(&o.validate, "validate", false, "validate config and schemas without writing output")
	fs.BoolVar(&o.init, "init", false, "write a config template to -config")
	fs.BoolVar(&o.force, "force", false, "overwrite an existing config with -init")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.init {
		if err := config.WriteTemplate(o.config, o.force); err != nil {
			return err
		}
		log.Info().Str("path", o.config).Msg("wrote config template")
		return nil
	}

	modules, err := resolveModules(o)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, m := range modules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return generate(m, o.validate)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Int("modules", len(modules)).Bool("validate", o.validate).Msg("xcbgen done")
	return nil
}

func resolveModules(o options) ([]config.ModuleConfig, error) {
	if o.schema != "" {
		m := config.ModuleConfig{
			Schema:  o.schema,
			Output:  o.output,
			Package: o.pkg,
			Header:  o.header,
		}
		if m.Output == "" {
			m.Output = config.DefaultOutput(m.Schema)
		}
		if err := config.ValidateModule(m); err != nil {
			return nil, fmt.Errorf("invalid -schema module: %w", err)
		}
		return []config.ModuleConfig{m}, nil
	}
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	return cfg.Modules, nil
}

func generate(m config.ModuleConfig, validateOnly bool) error {
	mod, err := schema.Load(m.Schema)
	if err != nil {
		return fmt.Errorf("%s: %w", m.Schema, err)
	}
	if validateOnly {
		log.Info().Str("schema", m.Schema).Msg("schema valid")
		return nil
	}
	src, err := gen.Generate(mod, m.Options())
	if err != nil {
		return fmt.Errorf("%s: %w", m.Schema, err)
	}
	if prev, err := os.ReadFile(m.Output); err == nil && bytes.Equal(prev, src) {
		log.Debug().Str("output", m.Output).Msg("output unchanged")
		return nil
	}
	if err := os.WriteFile(m.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", m.Output, err)
	}
	log.Info().Str("schema", m.Schema).Str("output", m.Output).Int("bytes", len(src)).Msg("generated")
	return nil
}
