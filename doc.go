// Package pathwalk navigates and mutates heterogeneous nested object
// graphs (maps, slices, arrays, structs and registered record types)
// addressed by escaped dotted paths.
//
// A [Walker] reads values out of a graph:
//
//	w := pathwalk.NewWalker(pathwalk.ParsePaths("person.address.street"))
//	v, err := w.Read(root)
//
// A [Writer] sets values in a graph, dispatching on the [Kind] of each
// container it passes through:
//
//	err := pathwalk.NewWriter().WriteString(root, "orders.0.status", "shipped")
//
// A [MapWriter] builds a nested map[string]any from scratch out of
// (path, value) pairs.
//
// Walks that cannot proceed are classified with an [ErrorCode] and
// handled per the configured [OnDeadEnd] policy: surface an error,
// return the code as the value, or return nil.
//
// # Related Packages
//
//   - [github.com/naturalis-io/pathwalk/path] path values and grammar
//   - [github.com/naturalis-io/pathwalk/record] property access on record types
//   - [github.com/naturalis-io/pathwalk/convert] loss-checked value conversion
//   - [github.com/naturalis-io/pathwalk/mapdiff] structural diffs of nested maps
//   - [github.com/naturalis-io/pathwalk/eval] expression evaluation for computed writes
package pathwalk
