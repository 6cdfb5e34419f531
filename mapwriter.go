package pathwalk

import (
	"errors"
	"fmt"

	"github.com/naturalis-io/pathwalk/path"
)

var (
	// ErrPathBlocked is returned when a write would tunnel through, or
	// flatten, a path prefix already bound to an incompatible value.
	// Writes never silently replace a leaf with a map or a map with a
	// leaf.
	ErrPathBlocked = errors.New("path blocked")

	// ErrNullSegment is returned when a null-marker segment is used
	// where a string map key is required.
	ErrNullSegment = errors.New("null-marker segment cannot key a map")
)

// MapWriter assembles a nested string-keyed map incrementally from
// (path, value) pairs, synthesizing empty intermediate maps on demand:
//
//	w := pathwalk.NewMapWriter()
//	w.Write("person.address.street", "Main St")
//	w.Write("person.firstName", "John")
//	w.Map() // {person: {address: {street: Main St}, firstName: John}}
//
// A MapWriter holds the map under construction and is not safe for
// concurrent use.
type MapWriter struct {
	m      map[string]any
	prefix path.Path
}

// NewMapWriter returns a MapWriter over a fresh root map.
func NewMapWriter() *MapWriter {
	return &MapWriter{m: map[string]any{}}
}

// Write parses p and binds its last segment to v, creating intermediate
// maps as needed. It fails with ErrPathBlocked when an intermediate
// segment is already bound to a non-map value, or when the final
// segment is already bound to a map. Re-binding a leaf to a new leaf
// value is an ordinary overwrite.
func (w *MapWriter) Write(p string, v any) error {
	return w.WritePath(path.Parse(p), v)
}

// WritePath is Write with a parsed path.
func (w *MapWriter) WritePath(p path.Path, v any) error {
	if p.IsEmpty() {
		return fmt.Errorf("pathwalk: cannot write to the empty path")
	}
	m := w.m
	for i := 0; i < p.Len()-1; i++ {
		cm, err := w.enter(m, p, i)
		if err != nil {
			return err
		}
		m = cm
	}
	last := p.SegAt(-1)
	if last.Null {
		return fmt.Errorf("%w: %q", ErrNullSegment, w.full(p).String())
	}
	if old, ok := m[last.Value]; ok {
		if _, isMap := old.(map[string]any); isMap {
			return fmt.Errorf("%w: %q is bound to a nested map", ErrPathBlocked, w.full(p).String())
		}
	}
	m[last.Value] = v
	return nil
}

// In returns a handle scoped under prefix: subsequent writes omit the
// shared prefix. The prefix itself is created (or validated) like any
// other intermediate path.
func (w *MapWriter) In(prefix string) (*MapWriter, error) {
	return w.InPath(path.Parse(prefix))
}

// InPath is In with a parsed path.
func (w *MapWriter) InPath(prefix path.Path) (*MapWriter, error) {
	m := w.m
	for i := 0; i < prefix.Len(); i++ {
		cm, err := w.enter(m, prefix, i)
		if err != nil {
			return nil, err
		}
		m = cm
	}
	return &MapWriter{m: m, prefix: w.prefix.Append(prefix.Segments()...)}, nil
}

// Map returns the live map under construction, not a copy. Callers
// sharing it across goroutines own the synchronization.
func (w *MapWriter) Map() map[string]any {
	return w.m
}

// enter resolves (creating if absent) the nested map at segment i of p.
func (w *MapWriter) enter(m map[string]any, p path.Path, i int) (map[string]any, error) {
	seg := p.SegAt(i)
	if seg.Null {
		full := w.full(p)
		blocked, _ := full.Subpath(0, w.prefix.Len()+i+1)
		return nil, fmt.Errorf("%w: %q", ErrNullSegment, blocked.String())
	}
	child, ok := m[seg.Value]
	if !ok || child == nil {
		nm := map[string]any{}
		m[seg.Value] = nm
		return nm, nil
	}
	cm, ok := child.(map[string]any)
	if !ok {
		full := w.full(p)
		blocked, _ := full.Subpath(0, w.prefix.Len()+i+1)
		return nil, fmt.Errorf("%w: %q is bound to a terminal value", ErrPathBlocked, blocked.String())
	}
	return cm, nil
}

// full prepends the handle's prefix for error reporting.
func (w *MapWriter) full(p path.Path) path.Path {
	return w.prefix.Append(p.Segments()...)
}
