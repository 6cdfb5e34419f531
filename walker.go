package pathwalk

import (
	"fmt"
	"reflect"

	"github.com/naturalis-io/pathwalk/debug"
	"github.com/naturalis-io/pathwalk/path"
)

// Walker reads values at one or more paths through an arbitrarily
// nested value. A Walker is stateless beyond its construction-time
// configuration and may be reused across many roots; walking itself
// never mutates anything.
type Walker struct {
	paths []path.Path
	cfg   config
}

// NewWalker returns a Walker over the given paths. The default policy
// is ReturnError.
func NewWalker(paths []path.Path, opts ...Option) *Walker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cp := make([]path.Path, len(paths))
	copy(cp, paths)
	return &Walker{paths: cp, cfg: cfg}
}

// ParsePaths is a convenience for building a Walker's path list from
// path strings.
func ParsePaths(ss ...string) []path.Path {
	ps := make([]path.Path, len(ss))
	for i, s := range ss {
		ps[i] = path.Parse(s)
	}
	return ps
}

// Read walks the walker's first path against root and returns the value
// found there. A dead end is rendered per the walker's policy.
func (w *Walker) Read(root any) (any, error) {
	if len(w.paths) == 0 {
		return nil, fmt.Errorf("pathwalk: walker has no paths")
	}
	return w.readOne(root, w.paths[0])
}

// ReadAll walks every path independently against the same root and
// returns one value per path, in path order.
func (w *Walker) ReadAll(root any) ([]any, error) {
	out := make([]any, len(w.paths))
	for i, p := range w.paths {
		v, err := w.readOne(root, p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadInto walks every path and stores the outcomes in out, keyed by
// the canonical path string.
func (w *Walker) ReadInto(root any, out map[string]any) error {
	for _, p := range w.paths {
		v, err := w.readOne(root, p)
		if err != nil {
			return err
		}
		out[p.String()] = v
	}
	return nil
}

func (w *Walker) readOne(root any, p path.Path) (any, error) {
	v, de := w.walk(root, p)
	if de != nil {
		return de.resolveRead(w.cfg.policy)
	}
	return v, nil
}

// walk resolves p against root segment by segment, dispatching on the
// kind of the current value.
func (w *Walker) walk(root any, p path.Path) (any, *deadEnd) {
	cur := root
	for i := 0; i < p.Len(); i++ {
		seg := p.SegAt(i)
		kind := KindOf(cur)
		if debug.Walk() {
			debug.Logf("walk %q: segment %d (%q) on %s\n", p.String(), i, seg.String(), kind)
		}
		switch kind {
		case KindNull:
			return nil, &deadEnd{code: TerminalValue, p: p, seg: i, msg: "nil value"}
		case KindMap:
			child, de := w.readMap(cur, seg, p, i)
			if de != nil {
				return nil, de
			}
			cur = child
		case KindList, KindObjectArray, KindPrimitiveArray:
			sv := sequenceValue(cur)
			idx, de := parseIndex(seg, sv.Len(), p, i)
			if de != nil {
				return nil, de
			}
			cur = sv.Index(idx).Interface()
		case KindRecord:
			if seg.Null || seg.Value == "" {
				return nil, &deadEnd{code: EmptySegment, p: p, seg: i}
			}
			v, err := w.cfg.accessor.Get(cur, seg.Value)
			if err != nil {
				return nil, &deadEnd{code: NotApplicable, p: p, seg: i, cause: err}
			}
			cur = v
		default:
			return nil, &deadEnd{code: TerminalValue, p: p, seg: i,
				msg: fmt.Sprintf("path continues past terminal %T", cur)}
		}
	}
	return cur, nil
}

func (w *Walker) readMap(m any, seg path.Segment, p path.Path, at int) (any, *deadEnd) {
	mv := containerValue(m)
	kv, de := w.cfg.mapKey(mv, seg, p, at)
	if de != nil {
		return nil, de
	}
	child := mv.MapIndex(kv)
	if !child.IsValid() {
		// a missing key is a dead end, not necessarily an error
		return nil, &deadEnd{code: NotApplicable, p: p, seg: at, msg: "no such key"}
	}
	return child.Interface(), nil
}

// mapKey runs the key deserializer and converts its result to the map's
// key type. Failures wrap as Exception with the cause preserved.
func (c *config) mapKey(mv reflect.Value, seg path.Segment, p path.Path, at int) (reflect.Value, *deadEnd) {
	key, err := c.keyDeser(seg)
	if err != nil {
		return reflect.Value{}, &deadEnd{code: Exception, p: p, seg: at, cause: err}
	}
	kt := mv.Type().Key()
	if key == nil {
		if kt.Kind() != reflect.Interface {
			return reflect.Value{}, &deadEnd{code: Exception, p: p, seg: at,
				msg: fmt.Sprintf("nil key for map keyed by %s", kt)}
		}
		return reflect.Zero(kt), nil
	}
	conv, err := c.convert(key, kt)
	if err != nil {
		return reflect.Value{}, &deadEnd{code: Exception, p: p, seg: at, cause: err}
	}
	return reflect.ValueOf(conv).Convert(kt), nil
}

// parseIndex requires a non-negative base-10 integer segment within
// [0, length), classifying each way it can fail distinctly.
func parseIndex(seg path.Segment, length int, p path.Path, at int) (int, *deadEnd) {
	if seg.Null || seg.Value == "" {
		return 0, &deadEnd{code: EmptySegment, p: p, seg: at}
	}
	idx := 0
	for i := 0; i < len(seg.Value); i++ {
		c := seg.Value[i]
		if c < '0' || c > '9' {
			return 0, &deadEnd{code: IndexExpected, p: p, seg: at,
				msg: fmt.Sprintf("%q is not an index", seg.Value)}
		}
		idx = idx*10 + int(c-'0')
		if idx > 1<<31 {
			return 0, &deadEnd{code: IndexOutOfBounds, p: p, seg: at}
		}
	}
	if idx >= length {
		return 0, &deadEnd{code: IndexOutOfBounds, p: p, seg: at,
			msg: fmt.Sprintf("index %d, length %d", idx, length)}
	}
	return idx, nil
}

// containerValue unwraps interfaces and pointers down to the underlying
// container value.
func containerValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv
}

// sequenceValue unwraps v to its slice or array value.
func sequenceValue(v any) reflect.Value {
	return containerValue(v)
}
