package pathwalk

import (
	"reflect"

	"github.com/naturalis-io/pathwalk/path"
)

// The three sequence strategies share index handling but assign
// differently: a list slot takes any value, an object array slot takes
// a value of its element type, and a primitive array slot converts the
// value to the primitive element type first.

// listStrategy applies one index segment to a generic []any sequence.
type listStrategy struct{}

func (listStrategy) write(w *Writer, c any, p path.Path, at int, v any) *deadEnd {
	elem, de := sequenceElem(c, p, at)
	if de != nil {
		return de
	}
	if at == p.Len()-1 {
		setValue(elem, v)
		return nil
	}
	return w.descend(elem.Interface(), p, at+1, v, func(nv any) *deadEnd {
		setValue(elem, nv)
		return nil
	})
}

// objectArrayStrategy applies one index segment to a typed sequence of
// non-primitive elements.
type objectArrayStrategy struct{}

func (objectArrayStrategy) write(w *Writer, c any, p path.Path, at int, v any) *deadEnd {
	elem, de := sequenceElem(c, p, at)
	if de != nil {
		return de
	}
	if at == p.Len()-1 {
		conv, err := w.cfg.convert(v, elem.Type())
		if err != nil {
			return &deadEnd{code: IllegalAssignment, p: p, seg: at, cause: err}
		}
		setValue(elem, conv)
		return nil
	}
	return w.descend(elem.Interface(), p, at+1, v, func(nv any) *deadEnd {
		setValue(elem, nv)
		return nil
	})
}

// primitiveArrayStrategy applies one index segment to a sequence of
// primitive elements; the path always terminates here.
type primitiveArrayStrategy struct{}

func (primitiveArrayStrategy) write(w *Writer, c any, p path.Path, at int, v any) *deadEnd {
	elem, de := sequenceElem(c, p, at)
	if de != nil {
		return de
	}
	if at < p.Len()-1 {
		return &deadEnd{code: TerminalValue, p: p, seg: at + 1,
			msg: "path continues past primitive element"}
	}
	conv, err := w.cfg.convert(v, elem.Type())
	if err != nil {
		return &deadEnd{code: IllegalAssignment, p: p, seg: at, cause: err}
	}
	setValue(elem, conv)
	return nil
}

// sequenceElem resolves the index segment at position at to a settable
// element of the sequence c.
func sequenceElem(c any, p path.Path, at int) (reflect.Value, *deadEnd) {
	sv := sequenceValue(c)
	idx, de := parseIndex(p.SegAt(at), sv.Len(), p, at)
	if de != nil {
		return reflect.Value{}, de
	}
	ev := sv.Index(idx)
	if !ev.CanSet() {
		return reflect.Value{}, &deadEnd{code: NotApplicable, p: p, seg: at,
			msg: "cannot mutate an array value; pass a pointer to the array"}
	}
	return ev, nil
}
