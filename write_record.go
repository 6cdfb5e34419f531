package pathwalk

import (
	"errors"
	"fmt"

	"github.com/naturalis-io/pathwalk/path"
	"github.com/naturalis-io/pathwalk/record"
)

// recordStrategy applies one property-name segment to a structured
// record through the writer's accessor. Terminal values are converted
// to the property's declared type before assignment.
type recordStrategy struct{}

func (recordStrategy) write(w *Writer, c any, p path.Path, at int, v any) *deadEnd {
	seg := p.SegAt(at)
	if seg.Null || seg.Value == "" {
		return &deadEnd{code: EmptySegment, p: p, seg: at}
	}
	name := seg.Value
	acc := w.cfg.accessor

	if at == p.Len()-1 {
		tp, err := acc.Type(c, name)
		if err != nil {
			return &deadEnd{code: NotApplicable, p: p, seg: at, cause: err}
		}
		conv, err := w.cfg.convert(v, tp)
		if err != nil {
			return &deadEnd{code: IllegalAssignment, p: p, seg: at, cause: err,
				msg: fmt.Sprintf("cannot assign %v (%T) to property %q (%s) of %T",
					v, v, name, tp, c)}
		}
		if err := acc.Set(c, name, conv); err != nil {
			if errors.Is(err, record.ErrNoSuchProperty) {
				return &deadEnd{code: NotApplicable, p: p, seg: at, cause: err}
			}
			return &deadEnd{code: Exception, p: p, seg: at, cause: err}
		}
		return nil
	}

	child, err := acc.Get(c, name)
	if err != nil {
		return &deadEnd{code: NotApplicable, p: p, seg: at, cause: err}
	}
	return w.descend(child, p, at+1, v, func(nv any) *deadEnd {
		if err := acc.Set(c, name, nv); err != nil {
			return &deadEnd{code: Exception, p: p, seg: at, cause: err}
		}
		return nil
	})
}
