package main

import (
	"fmt"
	"io"
	"os"

	"github.com/naturalis-io/pathwalk/mapdiff"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

var (
	addColor     = color.New(color.FgGreen)
	deleteColor  = color.New(color.FgRed)
	replaceColor = color.New(color.FgYellow)
)

// renderDiff prints diff entries one per line, colored by op when the
// output is a terminal or -color is set.
func renderDiff(cfg *MainConfig, cc *cli.Context, entries []mapdiff.Entry) error {
	colored := cfg.Color || isTerminal(cc.Out)
	for _, e := range entries {
		line := e.String()
		if colored {
			line = opColor(e.Op).Sprint(line)
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func opColor(op mapdiff.Op) *color.Color {
	switch op {
	case mapdiff.OpAdd:
		return addColor
	case mapdiff.OpDelete:
		return deleteColor
	default:
		return replaceColor
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
