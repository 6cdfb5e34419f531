// Package eval evaluates expressions against a nested object graph.
//
// Expressions run with the graph's top-level entries as their
// environment, plus a handful of functions for reaching into the graph
// by path:
//
//	v, err := eval.Value(`get("person.scores.0") + 1`, root, nil)
//
// # Related Packages
//
//   - github.com/naturalis-io/pathwalk - path reads behind get()
package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/naturalis-io/pathwalk"
	"github.com/naturalis-io/pathwalk/debug"
)

// Env holds extra bindings visible to an expression alongside the graph
// itself.
type Env map[string]any

// Value compiles and runs src against root. When root is a
// map[string]any its entries are visible as identifiers; every graph is
// additionally reachable through the get, has and kindof functions.
// Entries of env shadow graph entries of the same name.
func Value(src string, root any, env Env) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", src)
	}
	prg, err := Compile(src, root)
	if err != nil {
		return nil, err
	}
	return Run(prg, root, env)
}

// Compile compiles src with the graph functions bound to root. The
// program can be run many times.
func Compile(src string, root any) (*vm.Program, error) {
	return expr.Compile(src, exprOpts(root)...)
}

// Run runs a compiled program against root with extra env bindings.
func Run(prg *vm.Program, root any, env Env) (any, error) {
	return vm.Run(prg, runEnv(root, env))
}

func runEnv(root any, env Env) map[string]any {
	out := map[string]any{}
	if m, ok := root.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}
	}
	for k, v := range env {
		out[k] = v
	}
	return out
}

// exprOpts binds the graph access functions:
//
//	get(path)    the value at path, nil at a dead end
//	has(path)    whether path resolves
//	kindof(path) the Kind name of the value at path
//	getenv(name) the process environment variable
func exprOpts(root any) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			w := pathwalk.NewWalker(pathwalk.ParsePaths(params[0].(string)),
				pathwalk.WithDeadEnd(pathwalk.ReturnNull))
			return w.Read(root)
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			w := pathwalk.NewWalker(pathwalk.ParsePaths(params[0].(string)),
				pathwalk.WithDeadEnd(pathwalk.ReturnCode))
			v, err := w.Read(root)
			if err != nil {
				return false, err
			}
			_, dead := v.(pathwalk.ErrorCode)
			return !dead, nil
		},
			new(func(string) bool)),
		expr.Function("kindof", func(params ...any) (any, error) {
			w := pathwalk.NewWalker(pathwalk.ParsePaths(params[0].(string)),
				pathwalk.WithDeadEnd(pathwalk.ReturnNull))
			v, err := w.Read(root)
			if err != nil {
				return nil, err
			}
			return pathwalk.KindOf(v).String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
