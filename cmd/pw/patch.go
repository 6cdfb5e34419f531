package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchArg := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}

	pd := []byte(patchArg)
	if cfg.File {
		if pd, err = os.ReadFile(patchArg); err != nil {
			return err
		}
	}
	// the patch may arrive as YAML; json-patch wants JSON
	jd, err := yaml.YAMLToJSON(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(jd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}

	doc, err := loadDoc(file)
	if err != nil {
		return err
	}
	din, err := toJSON(doc)
	if err != nil {
		return err
	}
	dout, err := ops.Apply(din)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	if cfg.Verbose {
		theLog.Info("patched", "file", file, "ops", len(ops))
	}

	var out any
	if err := yaml.Unmarshal(dout, &out); err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc.Out, out)
}
