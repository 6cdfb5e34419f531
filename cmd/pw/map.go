package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk"

	"github.com/scott-cotton/cli"
)

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		cfg.Map.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: map requires at least one path=value pair", cli.ErrUsage)
	}

	mw := pathwalk.NewMapWriter()
	w := mw
	if cfg.In != "" {
		if w, err = mw.In(cfg.In); err != nil {
			return err
		}
	}
	for _, arg := range args {
		p, val, err := splitPair(arg)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		if err := w.Write(p, parseValue(val)); err != nil {
			return fmt.Errorf("error writing %s: %w", p, err)
		}
	}
	return writeDoc(cfg.MainConfig, cc.Out, mw.Map())
}
