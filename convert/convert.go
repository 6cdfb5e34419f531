// Package convert turns loosely typed values into values of a required
// type before they are assigned into typed slots (record properties,
// typed map values, primitive array elements).
package convert

import (
	"fmt"
	"reflect"
	"strconv"
)

// Func converts v to type t. Implementations return a *NotAssignableError
// when no sensible conversion exists.
type Func func(v any, t reflect.Type) (any, error)

// NotAssignableError reports a value that cannot be converted to the
// required type.
type NotAssignableError struct {
	Value any
	Type  reflect.Type
}

func (e *NotAssignableError) Error() string {
	return fmt.Sprintf("convert: cannot assign %v (%T) to %s", e.Value, e.Value, e.Type)
}

// To is the default conversion. It handles, in order: nil into nilable or
// zeroable slots, direct assignability, numeric widening/narrowing,
// string to number/bool, number/bool to string, and finally Go
// convertibility (excluding the integer-to-string rune conversion, which
// is never what a caller wants here).
func To(v any, t reflect.Type) (any, error) {
	if t == nil {
		return v, nil
	}
	if v == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(t).Interface(), nil
		}
		return nil, &NotAssignableError{Value: v, Type: t}
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) {
		return convertNumber(rv, t)
	}
	if rv.Kind() == reflect.String {
		if out, ok := fromString(rv.String(), t); ok {
			return out, nil
		}
		return nil, &NotAssignableError{Value: v, Type: t}
	}
	if t.Kind() == reflect.String {
		if s, ok := toString(rv); ok {
			return reflect.ValueOf(s).Convert(t).Interface(), nil
		}
		return nil, &NotAssignableError{Value: v, Type: t}
	}
	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t).Interface(), nil
	}
	return nil, &NotAssignableError{Value: v, Type: t}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// convertNumber converts between numeric kinds, refusing lossy overflow.
func convertNumber(rv reflect.Value, t reflect.Type) (any, error) {
	out := reflect.New(t).Elem()
	switch {
	case isInt(rv.Kind()):
		i := rv.Int()
		switch {
		case isInt(t.Kind()):
			if out.OverflowInt(i) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetInt(i)
		case isUint(t.Kind()):
			if i < 0 || out.OverflowUint(uint64(i)) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetUint(uint64(i))
		default:
			out.SetFloat(float64(i))
		}
	case isUint(rv.Kind()):
		u := rv.Uint()
		switch {
		case isInt(t.Kind()):
			if u > 1<<62 || out.OverflowInt(int64(u)) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetInt(int64(u))
		case isUint(t.Kind()):
			if out.OverflowUint(u) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetUint(u)
		default:
			out.SetFloat(float64(u))
		}
	default:
		f := rv.Float()
		switch {
		case isInt(t.Kind()):
			i := int64(f)
			if float64(i) != f || out.OverflowInt(i) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetInt(i)
		case isUint(t.Kind()):
			u := uint64(f)
			if f < 0 || float64(u) != f || out.OverflowUint(u) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetUint(u)
		default:
			if out.OverflowFloat(f) {
				return nil, &NotAssignableError{Value: rv.Interface(), Type: t}
			}
			out.SetFloat(f)
		}
	}
	return out.Interface(), nil
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func fromString(s string, t reflect.Type) (any, bool) {
	out := reflect.New(t).Elem()
	switch {
	case isInt(t.Kind()):
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil || out.OverflowInt(i) {
			return nil, false
		}
		out.SetInt(i)
	case isUint(t.Kind()):
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil || out.OverflowUint(u) {
			return nil, false
		}
		out.SetUint(u)
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || out.OverflowFloat(f) {
			return nil, false
		}
		out.SetFloat(f)
	case t.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, false
		}
		out.SetBool(b)
	case t.Kind() == reflect.String:
		out.SetString(s)
	default:
		return nil, false
	}
	return out.Interface(), true
}

func toString(rv reflect.Value) (string, bool) {
	switch {
	case isInt(rv.Kind()):
		return strconv.FormatInt(rv.Int(), 10), true
	case isUint(rv.Kind()):
		return strconv.FormatUint(rv.Uint(), 10), true
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}
