package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk/eval"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}

	doc, err := loadDoc(file)
	if err != nil {
		return err
	}
	if cfg.Expand {
		out, err := eval.ExpandString(src, doc, cfg.Env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, out)
		return err
	}
	v, err := eval.Value(src, doc, cfg.Env)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return writeDoc(cfg.MainConfig, cc.Out, v)
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		name, val, err := splitPair(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		env[name] = parseValue(val)
		return 0, nil
	}
}
