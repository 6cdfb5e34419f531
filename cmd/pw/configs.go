package main

import (
	"fmt"

	"github.com/naturalis-io/pathwalk"
	"github.com/naturalis-io/pathwalk/eval"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Color   bool `cli:"name=color desc='force colored output'"`
	Verbose bool `cli:"name=v desc='log each operation'"`

	Policy pathwalk.OnDeadEnd

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// policyOpt parses the -onDeadEnd flag: error (default), null or code.
func (cfg *MainConfig) policyOpt(_ *cli.Context, a string) (any, error) {
	p, ok := map[string]pathwalk.OnDeadEnd{
		"error": pathwalk.ReturnError,
		"null":  pathwalk.ReturnNull,
		"code":  pathwalk.ReturnCode,
	}[a]
	if !ok {
		return nil, fmt.Errorf("%w: invalid dead-end policy %q", cli.ErrUsage, a)
	}
	cfg.Policy = p
	return p, nil
}

func (cfg *MainConfig) walkOpts() []pathwalk.Option {
	return []pathwalk.Option{pathwalk.WithDeadEnd(cfg.Policy)}
}

type GetConfig struct {
	*MainConfig

	Flat bool `cli:"name=flat desc='key results by path'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Expr     bool `cli:"name=e aliases=expr desc='treat the value as an expression over the document'"`
	String   bool `cli:"name=s aliases=string desc='treat the value as a plain string'"`
	Mk       bool `cli:"name=mk desc='create intermediate maps'"`
	ShowDiff bool `cli:"name=showDiff desc='print the structural diff instead of the document'"`

	Set *cli.Command
}

type MapConfig struct {
	*MainConfig

	In string `cli:"name=in desc='prefix path for all entries'"`

	Map *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Expand bool `cli:"name=x aliases=expand desc='expand $[...] spans in a string argument'"`

	Eval *cli.Command
}

type GenConfig struct {
	*MainConfig

	Tag string `cli:"name=tag desc='struct tag key for property names'"`

	Gen *cli.Command
}
