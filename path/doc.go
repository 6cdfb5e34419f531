// Package path provides parsing and manipulation of escaped dotted paths.
//
// A path addresses one element of an arbitrarily nested value: map keys,
// record properties and sequence indices are all written as dot-separated
// segments:
//
//	identifications.0.scientificName.fullScientificName
//
// Inside a segment the separator and the escape character must be escaped
// with '^':
//   - ^. is a literal dot
//   - ^^ is a literal caret
//   - a segment that is exactly ^0 is the null-marker segment, which is
//     distinct from the empty string
//   - any other ^ passes through literally
//
// Paths are immutable; all derivation operations (Append, Shift, Parent,
// Subpath, Replace, Canonical) return new values.
//
// # Usage
//
//	p := path.Parse("a.b.c")
//	p.Len()            // 3
//	p.Seg(-1)          // "c"
//	sub, _ := p.Subpath(1, 2)   // "b.c"
//	p.Canonical()      // drops all-numeric index segments
//
// # Related Packages
//
//   - github.com/naturalis-io/pathwalk - reading and writing values at a path
package path
