package pathwalk

import "reflect"

// Kind is the closed set of container shapes the engine dispatches on.
// Every runtime value classifies as exactly one Kind, and exactly one
// read branch and one write strategy exists per Kind: adding a container
// kind is adding one strategy.
type Kind int

const (
	KindNull Kind = iota
	KindMap
	KindList
	KindObjectArray
	KindPrimitiveArray
	KindRecord
	KindLeaf
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:           "Null",
		KindMap:            "Map",
		KindList:           "List",
		KindObjectArray:    "ObjectArray",
		KindPrimitiveArray: "PrimitiveArray",
		KindRecord:         "Record",
		KindLeaf:           "Leaf",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Kinds returns all kinds in dispatch order.
func Kinds() []Kind {
	return []Kind{
		KindNull,
		KindMap,
		KindList,
		KindObjectArray,
		KindPrimitiveArray,
		KindRecord,
		KindLeaf,
	}
}

// IsContainer reports whether a path can continue through values of
// this kind.
func (k Kind) IsContainer() bool {
	switch k {
	case KindNull, KindLeaf:
		return false
	default:
		return true
	}
}

// KindOf classifies a runtime value:
//   - nil and nil pointers → KindNull
//   - any map → KindMap
//   - []any → KindList
//   - other slices, arrays and pointers-to-array → KindObjectArray, or
//     KindPrimitiveArray when the element type is a primitive
//   - structs and pointers-to-struct → KindRecord
//   - everything else → KindLeaf
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return KindNull
		}
		return KindMap
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		return sequenceKind(rv.Type().Elem())
	case reflect.Array:
		return sequenceKind(rv.Type().Elem())
	case reflect.Struct:
		return KindRecord
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
		switch rv.Type().Elem().Kind() {
		case reflect.Struct:
			return KindRecord
		case reflect.Array:
			return sequenceKind(rv.Type().Elem().Elem())
		case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
			return kindOfValue(rv.Elem())
		}
		return KindLeaf
	case reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return kindOfValue(rv.Elem())
	}
	return KindLeaf
}

// sequenceKind splits sequences into the generic list ([]any), object
// arrays and primitive arrays.
func sequenceKind(elem reflect.Type) Kind {
	if elem.Kind() == reflect.Interface && elem.NumMethod() == 0 {
		return KindList
	}
	if isPrimitive(elem.Kind()) {
		return KindPrimitiveArray
	}
	return KindObjectArray
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
