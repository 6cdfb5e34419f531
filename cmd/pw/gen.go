package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk/record/gen"

	"github.com/scott-cotton/cli"
)

func genCmd(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: gen requires a package and at least one type", cli.ErrUsage)
	}
	src, err := gen.Source(args[0], args[1:], cfg.Tag)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("generated", "package", args[0], "types", args[1:])
	}
	_, err = cc.Out.Write(src)
	return err
}
