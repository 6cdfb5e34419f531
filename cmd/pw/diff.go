package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk/mapdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	from, err := loadDoc(args[0])
	if err != nil {
		return err
	}
	to, err := loadDoc(args[1])
	if err != nil {
		return err
	}
	return renderDiff(cfg.MainConfig, cc, mapdiff.Diff(from, to))
}
