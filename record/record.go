// Package record provides by-name property access over structured
// records (Go structs). The walking engine consumes the Accessor
// interface only, so callers can swap the reflection-based default for
// registered accessor tables (see Register and the gen subpackage) or
// their own implementation.
package record

import (
	"errors"
	"reflect"
)

// ErrNoSuchProperty is returned when a record has no readable or
// writable property with the requested name.
var ErrNoSuchProperty = errors.New("no such property")

// Accessor resolves properties of a record by name.
//
// Get accepts a struct or pointer to struct. Set requires a pointer to
// struct and performs a strict assignment: converting the value to the
// declared property type is the caller's concern (see the convert
// package). Type reports the declared type of a property.
type Accessor interface {
	Get(rec any, name string) (any, error)
	Set(rec any, name string, value any) error
	Type(rec any, name string) (reflect.Type, error)
}

// Default is the accessor used when none is injected: registered tables
// first, reflection otherwise.
var Default Accessor = NewStd()
