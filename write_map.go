package pathwalk

import (
	"reflect"

	"github.com/naturalis-io/pathwalk/path"
)

// mapStrategy applies one segment to a key-map. Keys pass through the
// writer's key deserializer; missing intermediate children may be
// synthesized as nested maps when the writer allows it.
type mapStrategy struct{}

func (mapStrategy) write(w *Writer, c any, p path.Path, at int, v any) *deadEnd {
	mv := containerValue(c)
	kv, de := w.cfg.mapKey(mv, p.SegAt(at), p, at)
	if de != nil {
		return de
	}
	et := mv.Type().Elem()
	if at == p.Len()-1 {
		conv, err := w.cfg.convert(v, et)
		if err != nil {
			// typed-map assignment failure; IllegalAssignment is
			// reserved for record properties
			return &deadEnd{code: Exception, p: p, seg: at, cause: err}
		}
		if conv == nil {
			mv.SetMapIndex(kv, reflect.Zero(et))
		} else {
			mv.SetMapIndex(kv, reflect.ValueOf(conv))
		}
		return nil
	}

	child := mv.MapIndex(kv)
	if !child.IsValid() || child.Interface() == nil {
		if !w.cfg.createMaps {
			return &deadEnd{code: NotApplicable, p: p, seg: at, msg: "no such key"}
		}
		nested := map[string]any{}
		if !reflect.TypeOf(nested).AssignableTo(et) {
			return &deadEnd{code: NotApplicable, p: p, seg: at,
				msg: "cannot synthesize a nested map for value type " + et.String()}
		}
		mv.SetMapIndex(kv, reflect.ValueOf(nested))
		return w.writeAny(nested, p, at+1, v)
	}

	return w.descend(child.Interface(), p, at+1, v, func(nv any) *deadEnd {
		mv.SetMapIndex(kv, reflect.ValueOf(nv))
		return nil
	})
}
