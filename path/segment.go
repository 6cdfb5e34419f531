package path

import "strings"

const (
	// Sep separates segments in a path string.
	Sep = '.'
	// Esc escapes Sep and itself inside a segment.
	Esc = '^'

	// nullToken is the un-decoded spelling of the null-marker segment.
	nullToken = "^0"
)

// Segment is one atomic step of a Path: a map key, record property name or
// sequence index. The null marker is a distinguished absent value, distinct
// from the empty string, and round-trips through path strings as "^0".
type Segment struct {
	Value string
	Null  bool
}

// Seg returns a plain string segment.
func Seg(s string) Segment {
	return Segment{Value: s}
}

// NullSegment is the null-marker segment.
var NullSegment = Segment{Null: true}

// String returns the escaped spelling of the segment, suitable for
// embedding in a path string.
// Examples:
//   - Seg("a") → "a"
//   - Seg("a.b") → "a^.b"
//   - Seg("^0") → "^^0"
//   - NullSegment → "^0"
func (s Segment) String() string {
	if s.Null {
		return nullToken
	}
	return Escape(s.Value)
}

// Compare orders segments lexicographically by value, with the null marker
// before any string.
func (s Segment) Compare(t Segment) int {
	switch {
	case s.Null && t.Null:
		return 0
	case s.Null:
		return -1
	case t.Null:
		return 1
	}
	return strings.Compare(s.Value, t.Value)
}

// isIndex reports whether the segment spells a base-10 sequence index,
// i.e. is non-null, non-empty and all ASCII digits.
func (s Segment) isIndex() bool {
	if s.Null || s.Value == "" {
		return false
	}
	for i := 0; i < len(s.Value); i++ {
		if s.Value[i] < '0' || s.Value[i] > '9' {
			return false
		}
	}
	return true
}

// Escape returns a parser-safe spelling of s: '.' becomes "^." and '^'
// becomes "^^". Escape is its own inverse under Parse: a path string built
// from escaped segments parses back to the original segment values.
// Examples:
//   - Escape("identifications.") → "identifications^."
//   - Escape("a^b") → "a^^b"
func Escape(s string) string {
	if !strings.ContainsAny(s, "^.") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Esc:
			b.WriteByte(Esc)
			b.WriteByte(Esc)
		case Sep:
			b.WriteByte(Esc)
			b.WriteByte(Sep)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
