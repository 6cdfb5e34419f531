package gen

import (
	"bytes"
	"go/format"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func personStruct() *types.Struct {
	fields := []*types.Var{
		types.NewField(token.NoPos, nil, "FirstName", types.Typ[types.String], false),
		types.NewField(token.NoPos, nil, "Age", types.Typ[types.Int], false),
		types.NewField(token.NoPos, nil, "Secret", types.Typ[types.String], false),
		types.NewField(token.NoPos, nil, "internal", types.Typ[types.Bool], false),
	}
	tags := []string{``, `walk:"years"`, `walk:"-"`, ``}
	return types.NewStruct(fields, tags)
}

func TestStructProps(t *testing.T) {
	got := structProps(personStruct(), "walk", nil)
	want := []prop{
		{Name: "firstName", Aliases: []string{"FirstName"}, Field: "FirstName", Type: "string"},
		{Name: "years", Aliases: []string{"Age", "age"}, Field: "Age", Type: "int"},
	}
	if d := cmp.Diff(want, got, cmp.AllowUnexported(prop{})); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestEmitTable(t *testing.T) {
	buf := &bytes.Buffer{}
	emitHeader(buf, "model", nil)
	emitTable(buf, "Person", structProps(personStruct(), "walk", nil))

	src, err := format.Source(buf.Bytes())
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, buf.String())
	}
	out := string(src)
	for _, want := range []string{
		"package model",
		"record.Register(reflect.TypeOf(Person{})",
		`"firstName": {`,
		`"years": {`,
		`props["FirstName"] = props["firstName"]`,
		`props["age"] = props["years"]`,
		"r.FirstName = v",
		"var zero int",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Secret") {
		t.Error("hidden field leaked into the table")
	}
}

func TestTagName(t *testing.T) {
	for in, want := range map[string]string{
		"name":     "name",
		"name,opt": "name",
		",opt":     "",
		"":         "",
	} {
		if got := tagName(in); got != want {
			t.Errorf("tagName(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestLowerCamel(t *testing.T) {
	for in, want := range map[string]string{
		"FirstName": "firstName",
		"URL":       "uRL",
		"a":         "a",
	} {
		if got := lowerCamel(in); got != want {
			t.Errorf("lowerCamel(%q): got %q, want %q", in, got, want)
		}
	}
}
