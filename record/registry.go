package record

import (
	"reflect"
	"sync"
)

// Prop is one entry of an accessor table: the declared type of a
// property plus its getter and setter. Setters operate on a pointer to
// the record type; getters accept both the value and the pointer form.
type Prop struct {
	Name string
	Type reflect.Type
	Get  func(rec any) (any, error)
	Set  func(rec any, value any) error
}

// Table is a registered accessor table for one record type, keyed by
// property name. Tables are typically produced by the gen subpackage but
// can be written by hand.
type Table struct {
	Props map[string]Prop
}

var (
	tablesMu sync.RWMutex
	tables   = map[reflect.Type]Table{}
)

// Register installs an accessor table for the struct type t. Registered
// tables take precedence over reflection in the Std accessor. Register
// is typically called from generated init functions.
func Register(t reflect.Type, tbl Table) {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	tables[t] = tbl
}

// Lookup returns the registered table for t, if any.
func Lookup(t reflect.Type) (Table, bool) {
	tablesMu.RLock()
	defer tablesMu.RUnlock()
	tbl, ok := tables[t]
	return tbl, ok
}
