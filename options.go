package pathwalk

import (
	"github.com/naturalis-io/pathwalk/convert"
	"github.com/naturalis-io/pathwalk/path"
	"github.com/naturalis-io/pathwalk/record"
)

// OnDeadEnd is the failure-handling policy of a Walker or Writer. It is
// fixed at construction and applies to every traversal step of every
// call; it is never re-decided mid-traversal.
type OnDeadEnd int

const (
	// ReturnNull renders a dead end silently: reads yield nil, writes
	// return no error. For callers that expect missing elements.
	ReturnNull OnDeadEnd = iota
	// ReturnError renders a dead end as a *Error carrying the
	// classified ErrorCode, the path and the offending segment. For
	// callers to whom a dead end must not happen.
	ReturnError
	// ReturnCode renders a dead end as the bare ErrorCode: reads yield
	// the code as the value, writes return it as the error. For callers
	// that inspect the outcome.
	ReturnCode
)

func (p OnDeadEnd) String() string {
	s, ok := map[OnDeadEnd]string{
		ReturnNull:  "ReturnNull",
		ReturnError: "ReturnError",
		ReturnCode:  "ReturnCode",
	}[p]
	if ok {
		return s
	}
	return "<unknown policy>"
}

// KeyDeserializer turns a path segment into a map key. The default uses
// the raw segment string (and a nil key for the null-marker segment);
// inject one to address maps keyed by ints, enums and the like.
type KeyDeserializer func(seg path.Segment) (any, error)

func defaultKeyDeserializer(seg path.Segment) (any, error) {
	if seg.Null {
		return nil, nil
	}
	return seg.Value, nil
}

type config struct {
	policy     OnDeadEnd
	keyDeser   KeyDeserializer
	accessor   record.Accessor
	convert    convert.Func
	createMaps bool
}

func defaultConfig() config {
	return config{
		policy:   ReturnError,
		keyDeser: defaultKeyDeserializer,
		accessor: record.Default,
		convert:  convert.To,
	}
}

// Option configures a Walker or Writer at construction.
type Option func(*config)

// WithDeadEnd sets the failure-handling policy.
func WithDeadEnd(p OnDeadEnd) Option {
	return func(c *config) { c.policy = p }
}

// WithKeyDeserializer sets the map key deserializer.
func WithKeyDeserializer(f KeyDeserializer) Option {
	return func(c *config) { c.keyDeser = f }
}

// WithAccessor sets the record property accessor.
func WithAccessor(a record.Accessor) Option {
	return func(c *config) { c.accessor = a }
}

// WithConverter sets the value conversion applied before typed
// assignments.
func WithConverter(f convert.Func) Option {
	return func(c *config) { c.convert = f }
}

// WithIntermediateMaps lets a Writer synthesize empty nested maps for
// missing intermediate segments of map containers. MapWriter is built on
// this; lists and arrays are never grown.
func WithIntermediateMaps() Option {
	return func(c *config) { c.createMaps = true }
}
