package path

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRange is returned when a subpath range falls outside the path.
var ErrRange = errors.New("path range out of bounds")

// Path is an immutable ordered sequence of segments. The zero value is the
// canonical empty path.
type Path struct {
	segs []Segment
}

// Empty is the canonical empty path. Parse("") returns it, and it is the
// only path whose String() is "".
var Empty = Path{}

// New builds a path from segments.
func New(segs ...Segment) Path {
	if len(segs) == 0 {
		return Empty
	}
	cp := make([]Segment, len(segs))
	copy(cp, segs)
	return Path{segs: cp}
}

// Of builds a path from plain (un-escaped) segment values.
func Of(values ...string) Path {
	segs := make([]Segment, len(values))
	for i, v := range values {
		segs[i] = Seg(v)
	}
	return New(segs...)
}

// Parse decodes an escaped dotted path string. Parsing never fails: every
// string decodes under the escape rules (^^ → ^, ^. → ., segment ^0 → the
// null marker, any other ^ literal), resolved in a single left-to-right
// pass. The empty string decodes to the canonical empty path.
//
// Examples:
//   - Parse("a.b.c") → 3 segments a, b, c
//   - Parse("a^.b") → 1 segment "a.b"
//   - Parse("a.^0.c") → a, null marker, c
//   - Parse("^^^.") → 1 segment "^."
func Parse(s string) Path {
	if s == "" {
		return Empty
	}
	var segs []Segment
	var buf []byte
	rawStart := 0
	flush := func(end int) {
		if s[rawStart:end] == nullToken {
			segs = append(segs, NullSegment)
		} else {
			segs = append(segs, Segment{Value: string(buf)})
		}
		buf = buf[:0]
	}
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == Esc && i+1 < len(s) && (s[i+1] == Esc || s[i+1] == Sep):
			buf = append(buf, s[i+1])
			i += 2
		case c == Sep:
			flush(i)
			i++
			rawStart = i
		default:
			buf = append(buf, c)
			i++
		}
	}
	flush(len(s))
	return Path{segs: segs}
}

// String returns the canonical escaped spelling. Re-parsing the result
// reproduces the identical segment sequence.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return ""
	}
	parts := make([]string, len(p.segs))
	for i, sg := range p.segs {
		parts[i] = sg.String()
	}
	return strings.Join(parts, string(Sep))
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether p is the empty path.
func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Seg returns the value of segment i; a negative i counts from the end.
// The null marker reads as the empty string; use SegAt to distinguish it.
// Seg panics if i is out of range.
func (p Path) Seg(i int) string {
	return p.SegAt(i).Value
}

// SegAt returns segment i; a negative i counts from the end. SegAt panics
// if i is out of range.
func (p Path) SegAt(i int) Segment {
	j := i
	if j < 0 {
		j += len(p.segs)
	}
	if j < 0 || j >= len(p.segs) {
		panic(fmt.Sprintf("path: segment index %d out of range for %q", i, p.String()))
	}
	return p.segs[j]
}

// Has reports whether segment index i exists; a negative i counts from
// the end. Seg and SegAt panic where Has returns false.
func (p Path) Has(i int) bool {
	j := i
	if j < 0 {
		j += len(p.segs)
	}
	return j >= 0 && j < len(p.segs)
}

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []Segment {
	cp := make([]Segment, len(p.segs))
	copy(cp, p.segs)
	return cp
}

// Append returns a new path with segs added at the end.
func (p Path) Append(segs ...Segment) Path {
	if len(segs) == 0 {
		return p
	}
	cp := make([]Segment, 0, len(p.segs)+len(segs))
	cp = append(cp, p.segs...)
	cp = append(cp, segs...)
	return Path{segs: cp}
}

// Shift returns the path without its first segment, or the canonical empty
// path if p is already empty.
func (p Path) Shift() Path {
	if len(p.segs) <= 1 {
		return Empty
	}
	return New(p.segs[1:]...)
}

// Parent returns the path without its last segment. The second return is
// false when p is empty and has no parent.
func (p Path) Parent() (Path, bool) {
	if len(p.segs) == 0 {
		return Empty, false
	}
	return New(p.segs[:len(p.segs)-1]...), true
}

// Subpath returns the n segments starting at from. A negative from counts
// from the end. An invalid range yields ErrRange.
// Example: Parse("a.b.c").Subpath(1, 2) → "b.c".
func (p Path) Subpath(from, n int) (Path, error) {
	start := from
	if start < 0 {
		start += len(p.segs)
	}
	if start < 0 || n < 0 || start+n > len(p.segs) {
		return Empty, fmt.Errorf("%w: [%d,+%d) of %q", ErrRange, from, n, p.String())
	}
	return New(p.segs[start : start+n]...), nil
}

// SubpathFrom returns the segments from from through the end. A negative
// from counts from the end. An invalid offset yields ErrRange.
func (p Path) SubpathFrom(from int) (Path, error) {
	start := from
	if start < 0 {
		start += len(p.segs)
	}
	if start < 0 || start > len(p.segs) {
		return Empty, fmt.Errorf("%w: [%d,...) of %q", ErrRange, from, p.String())
	}
	return New(p.segs[start:]...), nil
}

// Replace returns a new path with segment i replaced by seg. A negative i
// counts from the end. Replace panics if i is out of range.
func (p Path) Replace(i int, seg Segment) Path {
	j := i
	if j < 0 {
		j += len(p.segs)
	}
	if j < 0 || j >= len(p.segs) {
		panic(fmt.Sprintf("path: segment index %d out of range for %q", i, p.String()))
	}
	cp := p.Segments()
	cp[j] = seg
	return Path{segs: cp}
}

// Canonical returns the path with all-numeric (index) segments removed:
// the shape of the route independent of positions.
// Example: Parse("identifications.0.scientificName").Canonical() →
// "identifications.scientificName".
func (p Path) Canonical() Path {
	var segs []Segment
	for _, sg := range p.segs {
		if sg.isIndex() {
			continue
		}
		segs = append(segs, sg)
	}
	return New(segs...)
}

// Equal reports segment-wise equality.
func (p Path) Equal(q Path) bool {
	if len(p.segs) != len(q.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != q.segs[i] {
			return false
		}
	}
	return true
}

// Compare orders paths segment-wise lexicographically; a strict prefix
// sorts before its extensions.
func (p Path) Compare(q Path) int {
	n := min(len(p.segs), len(q.segs))
	for i := 0; i < n; i++ {
		if c := p.segs[i].Compare(q.segs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.segs) < len(q.segs):
		return -1
	case len(p.segs) > len(q.segs):
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(d []byte) error {
	*p = Parse(string(d))
	return nil
}
