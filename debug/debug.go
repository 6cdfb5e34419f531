// Package debug provides env-flag gated debug logging for the walking
// and writing engines. Flags are read once at startup:
//
//	PATHWALK_DEBUG_WALK   - log each read dispatch step
//	PATHWALK_DEBUG_WRITE  - log each write dispatch step
//	PATHWALK_DEBUG_DIFF   - log structural diffing
//	PATHWALK_DEBUG_EVAL   - log expression evaluation
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Write bool
	Diff  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("PATHWALK_DEBUG_WALK")
	d.Write = boolEnv("PATHWALK_DEBUG_WRITE")
	d.Diff = boolEnv("PATHWALK_DEBUG_DIFF")
	d.Eval = boolEnv("PATHWALK_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Write() bool {
	return d.Write
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
