package record

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// DefaultTag is the struct tag key naming a property.
const DefaultTag = "walk"

// Std is the standard accessor: a registered table when one exists for
// the record's type, reflection over exported struct fields otherwise.
//
// Property names resolve against, in order: the field's tag name, the
// field name itself, and the lower-camel form of the field name (so the
// segment "fullScientificName" finds the field FullScientificName). A
// tag of "-" hides the field.
type Std struct {
	// Tag is the struct tag key consulted for property names;
	// DefaultTag when empty.
	Tag string

	mu     sync.RWMutex
	fields map[reflect.Type]map[string]reflect.StructField
}

// NewStd returns a Std accessor with the default tag key.
func NewStd() *Std {
	return &Std{fields: map[reflect.Type]map[string]reflect.StructField{}}
}

func (a *Std) Get(rec any, name string) (any, error) {
	rv, t, err := recordValue(rec)
	if err != nil {
		return nil, err
	}
	if tbl, ok := Lookup(t); ok {
		p, ok := tbl.Props[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
		}
		return p.Get(rec)
	}
	f, ok := a.field(t, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil record", ErrNoSuchProperty, name)
	}
	return rv.FieldByIndex(f.Index).Interface(), nil
}

func (a *Std) Set(rec any, name string, value any) error {
	pv := reflect.ValueOf(rec)
	if pv.Kind() != reflect.Pointer || pv.IsNil() || pv.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("record: cannot set %q on %T, need a non-nil struct pointer", name, rec)
	}
	t := pv.Type().Elem()
	if tbl, ok := Lookup(t); ok {
		p, ok := tbl.Props[name]
		if !ok {
			return fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
		}
		return p.Set(rec, value)
	}
	f, ok := a.field(t, name)
	if !ok {
		return fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
	}
	fv := pv.Elem().FieldByIndex(f.Index)
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("record: cannot assign %T to property %q (%s) of %s",
			value, name, fv.Type(), t)
	}
	fv.Set(vv)
	return nil
}

func (a *Std) Type(rec any, name string) (reflect.Type, error) {
	_, t, err := recordValue(rec)
	if err != nil {
		return nil, err
	}
	if tbl, ok := Lookup(t); ok {
		p, ok := tbl.Props[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
		}
		return p.Type, nil
	}
	f, ok := a.field(t, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrNoSuchProperty, name, t)
	}
	return f.Type, nil
}

// recordValue unwraps rec to its struct value and type. The value is
// invalid (but the type still usable) for a nil struct pointer.
func recordValue(rec any) (reflect.Value, reflect.Type, error) {
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			t := rv.Type().Elem()
			if t.Kind() != reflect.Struct {
				return reflect.Value{}, nil, fmt.Errorf("record: %T is not a record", rec)
			}
			return reflect.Value{}, t, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("record: %T is not a record", rec)
	}
	return rv, rv.Type(), nil
}

// field resolves a property name to a struct field, caching the name
// table per record type.
func (a *Std) field(t reflect.Type, name string) (reflect.StructField, bool) {
	a.mu.RLock()
	m, ok := a.fields[t]
	a.mu.RUnlock()
	if !ok {
		m = a.buildFields(t)
		a.mu.Lock()
		a.fields[t] = m
		a.mu.Unlock()
	}
	f, ok := m[name]
	return f, ok
}

func (a *Std) buildFields(t reflect.Type) map[string]reflect.StructField {
	tag := a.Tag
	if tag == "" {
		tag = DefaultTag
	}
	m := map[string]reflect.StructField{}
	// lower-camel and plain names first so explicit tags win
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tagName(f.Tag.Get(tag)) == "-" {
			continue
		}
		m[lowerCamel(f.Name)] = f
		m[f.Name] = f
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if n := tagName(f.Tag.Get(tag)); n != "" && n != "-" {
			m[n] = f
		}
	}
	return m
}

// tagName extracts the name part of a tag value, e.g. "name,opt" → "name".
func tagName(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}
	return tag
}

func lowerCamel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
