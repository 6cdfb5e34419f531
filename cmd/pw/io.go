package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// loadDoc reads a YAML or JSON document from a file, or stdin for "-".
func loadDoc(arg string) (any, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

// writeDoc encodes v per the main config's output format: YAML by
// default, JSON under -j.
func writeDoc(cfg *MainConfig, w io.Writer, v any) error {
	d, err := marshalDoc(cfg, v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func marshalDoc(cfg *MainConfig, v any) ([]byte, error) {
	if cfg.J {
		return yaml.MarshalWithOptions(v, yaml.JSON())
	}
	return yaml.Marshal(v)
}

// toJSON renders v as JSON regardless of the output format, for
// consumers that only speak JSON.
func toJSON(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.JSON())
}

// deepCopy round-trips v so later mutations leave the copy alone.
func deepCopy(v any) (any, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := yaml.Unmarshal(d, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseValue decodes a command line value the way a YAML scalar decodes:
// numbers, booleans and null become typed values, everything else stays
// a string.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// splitPair splits a path=value argument.
func splitPair(arg string) (string, string, error) {
	i := strings.IndexByte(arg, '=')
	if i < 0 {
		return "", "", fmt.Errorf("expected path=value, got %q", arg)
	}
	return arg[:i], arg[i+1:], nil
}
