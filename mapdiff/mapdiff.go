// Package mapdiff computes structural diffs between nested value
// graphs built of map[string]any, []any and leaves.
//
// # Usage
//
//	// Compute the edits turning from into to
//	entries := mapdiff.Diff(from, to)
//
//	for _, e := range entries {
//		fmt.Println(e) // e.g. "replace person.address.city: Leiden -> Delft"
//	}
//
// Each edit is addressed by an escaped dotted path, so the results line
// up with the paths accepted by the walker and writers.
//
// # Related Packages
//
//   - github.com/naturalis-io/pathwalk/path - the path values on entries
package mapdiff

import (
	"encoding/json"
	"fmt"
	"sort"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/naturalis-io/pathwalk/debug"
	"github.com/naturalis-io/pathwalk/path"
)

// Op is the edit kind of a diff entry.
type Op int

const (
	OpAdd Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpAdd:     "add",
		OpDelete:  "delete",
		OpReplace: "replace",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Entry is one edit: the value at Path changed From one subtree To
// another. From is nil for adds, To is nil for deletes. Delete and add
// paths index into their own side of the diff.
type Entry struct {
	Path path.Path
	Op   Op
	From any
	To   any
}

func (e Entry) String() string {
	switch e.Op {
	case OpAdd:
		return fmt.Sprintf("add %s: %v", e.Path.String(), e.To)
	case OpDelete:
		return fmt.Sprintf("delete %s: %v", e.Path.String(), e.From)
	default:
		return fmt.Sprintf("replace %s: %v -> %v", e.Path.String(), e.From, e.To)
	}
}

// Diff returns the edits turning from into to, in sorted key order at
// each level. A nil result means the graphs are structurally equal.
func Diff(from, to any) []Entry {
	return diffAt(path.Empty, from, to)
}

func diffAt(at path.Path, from, to any) []Entry {
	if debug.Diff() {
		debug.Logf("diff at %q: %T vs %T\n", at.String(), from, to)
	}
	fm, fmOK := from.(map[string]any)
	tm, tmOK := to.(map[string]any)
	if fmOK && tmOK {
		return diffMaps(at, fm, tm)
	}
	fl, flOK := from.([]any)
	tl, tlOK := to.([]any)
	if flOK && tlOK {
		return diffLists(at, fl, tl)
	}
	if fingerprint(from) == fingerprint(to) {
		return nil
	}
	return []Entry{{Path: at, Op: OpReplace, From: from, To: to}}
}

// diffMaps aligns the two key sets with an edit-distance pass over
// rune-mapped keys, then recurses on the values of keys present in
// both.
func diffMaps(at path.Path, from, to map[string]any) []Entry {
	toRune := map[string]rune{}
	fromRune := map[rune]string{}
	fr := mapRunes(toRune, fromRune, sortedKeys(from))
	tr := mapRunes(toRune, fromRune, sortedKeys(to))

	var out []Entry
	for _, d := range diffpatch.New().DiffMainRunes(fr, tr, false) {
		for _, r := range d.Text {
			key := fromRune[r]
			kp := at.Append(path.Seg(key))
			switch d.Type {
			case diffpatch.DiffDelete:
				out = append(out, Entry{Path: kp, Op: OpDelete, From: from[key]})
			case diffpatch.DiffInsert:
				out = append(out, Entry{Path: kp, Op: OpAdd, To: to[key]})
			default:
				out = append(out, diffAt(kp, from[key], to[key])...)
			}
		}
	}
	return out
}

// diffLists aligns elements by fingerprint. Equal elements pair up and
// the rest surface as adds and deletes indexed into their own side.
func diffLists(at path.Path, from, to []any) []Entry {
	toRune := map[string]rune{}
	fr := make([]rune, len(from))
	for i, v := range from {
		fr[i] = runeFor(toRune, fingerprint(v))
	}
	tr := make([]rune, len(to))
	for i, v := range to {
		tr[i] = runeFor(toRune, fingerprint(v))
	}

	var out []Entry
	fi, ti := 0, 0
	for _, d := range diffpatch.New().DiffMainRunes(fr, tr, false) {
		for range d.Text {
			switch d.Type {
			case diffpatch.DiffDelete:
				out = append(out, Entry{
					Path: at.Append(path.Seg(fmt.Sprintf("%d", fi))),
					Op:   OpDelete, From: from[fi],
				})
				fi++
			case diffpatch.DiffInsert:
				out = append(out, Entry{
					Path: at.Append(path.Seg(fmt.Sprintf("%d", ti))),
					Op:   OpAdd, To: to[ti],
				})
				ti++
			default:
				fi++
				ti++
			}
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func mapRunes(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func runeFor(m map[string]rune, k string) rune {
	r, ok := m[k]
	if !ok {
		r = rune(len(m))
		m[k] = r
	}
	return r
}

// fingerprint renders v canonically. JSON keeps map keys sorted, which
// makes the form stable across runs.
func fingerprint(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}
