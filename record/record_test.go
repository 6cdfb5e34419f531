package record

import (
	"errors"
	"reflect"
	"testing"
)

type scientificName struct {
	FullScientificName string
	GenusOrMonomial    string
	AuthorshipVerbatim string `walk:"authorship"`
	notes              string
	Skipped            string `walk:"-"`
}

func TestStdGet(t *testing.T) {
	sn := scientificName{
		FullScientificName: "Larus fuscus fuscus",
		GenusOrMonomial:    "Larus",
		AuthorshipVerbatim: "L.",
	}
	a := NewStd()

	tests := []struct {
		name    string
		prop    string
		want    any
		wantErr bool
	}{
		{"lower camel", "fullScientificName", "Larus fuscus fuscus", false},
		{"field name", "FullScientificName", "Larus fuscus fuscus", false},
		{"tag name", "authorship", "L.", false},
		{"unexported", "notes", nil, true},
		{"hidden by tag", "skipped", nil, true},
		{"missing", "nope", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Get(sn, tt.prop)
			if tt.wantErr {
				if !errors.Is(err, ErrNoSuchProperty) {
					t.Fatalf("Get(%q) err = %v, want ErrNoSuchProperty", tt.prop, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.prop, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.prop, got, tt.want)
			}
		})
	}

	// pointer records read the same way
	got, err := a.Get(&sn, "genusOrMonomial")
	if err != nil || got != "Larus" {
		t.Errorf("Get(&sn, genusOrMonomial) = %v, %v", got, err)
	}
}

func TestStdSet(t *testing.T) {
	a := NewStd()
	sn := &scientificName{}
	if err := a.Set(sn, "fullScientificName", "Parus major"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if sn.FullScientificName != "Parus major" {
		t.Errorf("FullScientificName = %q", sn.FullScientificName)
	}
	if err := a.Set(sn, "authorship", "Linnaeus"); err != nil {
		t.Fatalf("Set via tag: %v", err)
	}
	if sn.AuthorshipVerbatim != "Linnaeus" {
		t.Errorf("AuthorshipVerbatim = %q", sn.AuthorshipVerbatim)
	}

	// strict assignment: wrong type is an error, not a conversion
	if err := a.Set(sn, "fullScientificName", 7); err == nil {
		t.Error("Set with int into string property did not fail")
	}
	// set requires a pointer record
	if err := a.Set(scientificName{}, "fullScientificName", "x"); err == nil {
		t.Error("Set on non-pointer record did not fail")
	}
	// nil zeroes the property
	if err := a.Set(sn, "fullScientificName", nil); err != nil {
		t.Fatalf("Set nil: %v", err)
	}
	if sn.FullScientificName != "" {
		t.Errorf("FullScientificName after nil = %q", sn.FullScientificName)
	}
}

func TestStdType(t *testing.T) {
	a := NewStd()
	tp, err := a.Type(&scientificName{}, "fullScientificName")
	if err != nil {
		t.Fatal(err)
	}
	if tp != reflect.TypeOf("") {
		t.Errorf("Type = %s, want string", tp)
	}
	// nil pointer still resolves the type
	tp, err = a.Type((*scientificName)(nil), "authorship")
	if err != nil || tp != reflect.TypeOf("") {
		t.Errorf("Type on nil pointer = %s, %v", tp, err)
	}
}

type registered struct {
	N int
}

func TestRegisteredTable(t *testing.T) {
	Register(reflect.TypeOf(registered{}), Table{Props: map[string]Prop{
		"n": {
			Name: "n",
			Type: reflect.TypeOf(0),
			Get: func(rec any) (any, error) {
				switch r := rec.(type) {
				case *registered:
					return r.N, nil
				case registered:
					return r.N, nil
				}
				return nil, ErrNoSuchProperty
			},
			Set: func(rec any, v any) error {
				r, ok := rec.(*registered)
				if !ok {
					return ErrNoSuchProperty
				}
				r.N = v.(int)
				return nil
			},
		},
	}})

	a := NewStd()
	r := &registered{N: 3}
	got, err := a.Get(r, "n")
	if err != nil || got != 3 {
		t.Fatalf("Get(n) = %v, %v", got, err)
	}
	if err := a.Set(r, "n", 9); err != nil {
		t.Fatal(err)
	}
	if r.N != 9 {
		t.Errorf("N = %d, want 9", r.N)
	}
	// the table hides everything it does not list, even real fields
	if _, err := a.Get(r, "N"); !errors.Is(err, ErrNoSuchProperty) {
		t.Errorf("Get(N) err = %v, want ErrNoSuchProperty", err)
	}
}
