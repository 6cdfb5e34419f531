package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires at least one path", cli.ErrUsage)
	}
	paths, files := splitPathsFiles(args)
	if len(paths) == 0 {
		return fmt.Errorf("%w: get requires at least one path", cli.ErrUsage)
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	w := pathwalk.NewWalker(pathwalk.ParsePaths(paths...), cfg.walkOpts()...)
	for _, file := range files {
		doc, err := loadDoc(file)
		if err != nil {
			return err
		}
		if cfg.Flat {
			out := map[string]any{}
			if err := w.ReadInto(doc, out); err != nil {
				return fmt.Errorf("error reading %s: %w", file, err)
			}
			if err := writeDoc(cfg.MainConfig, cc.Out, out); err != nil {
				return err
			}
			continue
		}
		vs, err := w.ReadAll(doc)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		for _, v := range vs {
			if err := writeDoc(cfg.MainConfig, cc.Out, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitPathsFiles separates path arguments from file arguments at "--";
// without a separator every argument after the first is a file.
func splitPathsFiles(args []string) ([]string, []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args[:1], args[1:]
}
