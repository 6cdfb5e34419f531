package eval

import (
	"strings"
	"testing"
)

func evalGraph() map[string]any {
	return map[string]any{
		"count": 3,
		"person": map[string]any{
			"firstName": "Ada",
			"scores":    []any{7, 9},
		},
	}
}

func TestValue(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want any
	}{
		{`count * 2`, 6},
		{`person.firstName`, "Ada"},
		{`get("person.scores.1")`, 9},
		{`get("person.scores.1") > get("person.scores.0")`, true},
		{`get("no.such.path")`, nil},
		{`has("person.firstName")`, true},
		{`has("person.lastName")`, false},
		{`kindof("person")`, "Map"},
		{`kindof("person.scores")`, "List"},
		{`kindof("person.firstName")`, "Leaf"},
	} {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Value(tc.src, evalGraph(), nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestValueEnvShadowing(t *testing.T) {
	got, err := Value(`count + extra`, evalGraph(), Env{"count": 10, "extra": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("got %v, want 11", got)
	}
}

func TestValueCompileError(t *testing.T) {
	_, err := Value(`count +`, evalGraph(), nil)
	if err == nil {
		t.Fatal("want compile error")
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("PATHWALK_TEST_VAR", "hello")
	got, err := Value(`getenv("PATHWALK_TEST_VAR")`, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("got %v, want hello", got)
	}
}

func TestExpandString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{`hello $[person.firstName]`, "hello Ada"},
		{`$[count] items`, "3 items"},
		{`$[get("person.scores.0") + 1] points`, "8 points"},
		{`no spans here`, "no spans here"},
		{`missing is $[get("nope")]`, "missing is null"},
	} {
		got, err := ExpandString(tc.in, evalGraph(), nil)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandStringErrors(t *testing.T) {
	if _, err := ExpandString(`$[count`, evalGraph(), nil); err == nil ||
		!strings.Contains(err.Error(), "unterminated") {
		t.Errorf("got %v, want unterminated error", err)
	}
	if _, err := ExpandString(`$[person]`, evalGraph(), nil); err == nil {
		t.Error("want error splicing a map")
	}
}
