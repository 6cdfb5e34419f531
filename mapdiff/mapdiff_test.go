package mapdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/naturalis-io/pathwalk/path"
)

func TestDiffMaps(t *testing.T) {
	from := map[string]any{
		"person": map[string]any{
			"firstName": "Ada",
			"address":   map[string]any{"city": "Leiden", "street": "Main St"},
		},
		"gone": 1,
	}
	to := map[string]any{
		"person": map[string]any{
			"firstName": "Ada",
			"address":   map[string]any{"city": "Delft", "street": "Main St"},
		},
		"new": 2,
	}
	want := []Entry{
		{Path: path.Parse("gone"), Op: OpDelete, From: 1},
		{Path: path.Parse("new"), Op: OpAdd, To: 2},
		{Path: path.Parse("person.address.city"), Op: OpReplace, From: "Leiden", To: "Delft"},
	}
	got := Diff(from, to)
	if d := cmp.Diff(want, got, cmp.Comparer(path.Path.Equal)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDiffEqual(t *testing.T) {
	g := map[string]any{"a": []any{1, map[string]any{"b": true}}}
	if got := Diff(g, g); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestDiffLists(t *testing.T) {
	from := []any{"a", "b", "c"}
	to := []any{"a", "c", "d"}
	want := []Entry{
		{Path: path.Parse("1"), Op: OpDelete, From: "b"},
		{Path: path.Parse("2"), Op: OpAdd, To: "d"},
	}
	got := Diff(from, to)
	if d := cmp.Diff(want, got, cmp.Comparer(path.Path.Equal)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestDiffKindChange(t *testing.T) {
	from := map[string]any{"x": map[string]any{"a": 1}}
	to := map[string]any{"x": []any{1}}
	got := Diff(from, to)
	if len(got) != 1 || got[0].Op != OpReplace || got[0].Path.String() != "x" {
		t.Fatalf("got %v, want single replace at x", got)
	}
}

func TestDiffEscapedKeys(t *testing.T) {
	from := map[string]any{"identifications.": 1}
	to := map[string]any{"identifications.": 2}
	got := Diff(from, to)
	if len(got) != 1 {
		t.Fatalf("got %v, want one entry", got)
	}
	if s := got[0].Path.String(); s != "identifications^." {
		t.Errorf("path %q, want identifications^.", s)
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{Path: path.Parse("a.b"), Op: OpReplace, From: 1, To: 2}
	if got, want := e.String(), "replace a.b: 1 -> 2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
