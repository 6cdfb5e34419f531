package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk"
	"github.com/naturalis-io/pathwalk/eval"
	"github.com/naturalis-io/pathwalk/mapdiff"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	if cfg.Expr && cfg.String {
		return fmt.Errorf("%w: -e and -s exclude each other", cli.ErrUsage)
	}
	pathArg, valArg := args[0], args[1]
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}

	doc, err := loadDoc(file)
	if err != nil {
		return err
	}
	var before any
	if cfg.ShowDiff {
		if before, err = deepCopy(doc); err != nil {
			return err
		}
	}

	var v any
	switch {
	case cfg.Expr:
		if v, err = eval.Value(valArg, doc, nil); err != nil {
			return fmt.Errorf("error evaluating %q: %w", valArg, err)
		}
	case cfg.String:
		v = valArg
	default:
		v = parseValue(valArg)
	}

	opts := cfg.walkOpts()
	if cfg.Mk {
		opts = append(opts, pathwalk.WithIntermediateMaps())
	}
	if err := pathwalk.NewWriter(opts...).WriteString(doc, pathArg, v); err != nil {
		return fmt.Errorf("error writing %s: %w", pathArg, err)
	}
	if cfg.Verbose {
		theLog.Info("set", "path", pathArg, "value", v)
	}

	if cfg.ShowDiff {
		return renderDiff(cfg.MainConfig, cc, mapdiff.Diff(before, doc))
	}
	return writeDoc(cfg.MainConfig, cc.Out, doc)
}
