package pathwalk

import (
	"reflect"

	"github.com/naturalis-io/pathwalk/debug"
	"github.com/naturalis-io/pathwalk/path"
)

// Writer applies one path segment at a time to mutate a nested value in
// place. One strategy exists per container kind; the Writer dispatches
// on the kind of the current container and delegates the remaining path
// to the strategy for the child's kind. Lists and arrays are never
// grown; intermediate maps are synthesized only under
// WithIntermediateMaps.
//
// Like Walker, a Writer is stateless beyond its construction-time
// configuration. The container being written is the only shared mutable
// state, and its synchronization is the caller's concern.
type Writer struct {
	cfg config
}

// NewWriter returns a Writer. The default policy is ReturnError.
func NewWriter(opts ...Option) *Writer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{cfg: cfg}
}

// Write assigns v at p inside root. Containers along the path are
// mutated in place, so maps, slices and pointers reach the caller's
// data; a struct or array at the root must be passed as a pointer for
// the write to be observable. A dead end is rendered per the writer's
// policy.
func (w *Writer) Write(root any, p path.Path, v any) error {
	if p.IsEmpty() {
		de := &deadEnd{code: EmptySegment, p: p, seg: -1, msg: "empty path"}
		return de.resolveWrite(w.cfg.policy)
	}
	if de := w.writeAny(root, p, 0, v); de != nil {
		return de.resolveWrite(w.cfg.policy)
	}
	return nil
}

// WriteString is Write with an unparsed path.
func (w *Writer) WriteString(root any, p string, v any) error {
	return w.Write(root, path.Parse(p), v)
}

// strategy applies the path segment at index at of p to container c,
// either performing the terminal assignment or delegating the suffix.
type strategy interface {
	write(w *Writer, c any, p path.Path, at int, v any) *deadEnd
}

// strategies is the fixed mapping from container kind to the one
// strategy handling it. A new kind is a new entry plus its strategy
// type; nothing else changes.
var strategies = map[Kind]strategy{
	KindMap:            mapStrategy{},
	KindList:           listStrategy{},
	KindObjectArray:    objectArrayStrategy{},
	KindPrimitiveArray: primitiveArrayStrategy{},
	KindRecord:         recordStrategy{},
}

func (w *Writer) writeAny(c any, p path.Path, at int, v any) *deadEnd {
	kind := KindOf(c)
	if debug.Write() {
		debug.Logf("write %q: segment %d (%q) on %s\n", p.String(), at, p.SegAt(at).String(), kind)
	}
	s, ok := strategies[kind]
	if !ok {
		return &deadEnd{code: TerminalValue, p: p, seg: at,
			msg: "cannot continue past terminal value"}
	}
	return s.write(w, c, p, at, v)
}

// descend recurses into a child container for the path suffix starting
// at index at. Value-typed children (structs, arrays) are copied out to
// an addressable location, written, and handed back to store so the
// parent can re-seat them; reference children (maps, slices, pointers)
// are written through directly.
func (w *Writer) descend(child any, p path.Path, at int, v any, store func(any) *deadEnd) *deadEnd {
	if child == nil {
		return &deadEnd{code: TerminalValue, p: p, seg: at, msg: "nil value"}
	}
	rv := reflect.ValueOf(child)
	switch rv.Kind() {
	case reflect.Struct, reflect.Array:
		addr := reflect.New(rv.Type())
		addr.Elem().Set(rv)
		if de := w.writeAny(addr.Interface(), p, at, v); de != nil {
			return de
		}
		if store != nil {
			return store(addr.Elem().Interface())
		}
		return nil
	}
	return w.writeAny(child, p, at, v)
}

// setValue assigns v (possibly nil) into dst.
func setValue(dst reflect.Value, v any) {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	dst.Set(reflect.ValueOf(v))
}
