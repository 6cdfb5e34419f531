package pathwalk

import (
	"fmt"

	"github.com/naturalis-io/pathwalk/path"
)

// ErrorCode classifies every way a traversal step can dead-end. Each
// low-level failure is classified into exactly one code at detection
// time; how a code reaches the caller is decided by the instance's
// OnDeadEnd policy.
type ErrorCode int

const (
	// NotApplicable: the segment cannot be applied to the container
	// kind encountered (no such property, no such key, or a container
	// that cannot be mutated in place).
	NotApplicable ErrorCode = iota
	// IndexExpected: a list or array segment is not a non-negative
	// base-10 integer.
	IndexExpected
	// IndexOutOfBounds: a list or array index falls outside [0, length).
	IndexOutOfBounds
	// EmptySegment: an empty (or null-marker) segment where a non-empty
	// one is required.
	EmptySegment
	// TerminalValue: the path continues past a terminal value (a leaf,
	// nil, or an absent element).
	TerminalValue
	// Exception: a wrapped collaborator failure (key deserialization,
	// typed-map assignment); the cause is preserved.
	Exception
	// IllegalAssignment: a value that cannot be assigned to the
	// declared type of a typed slot (record property, primitive array
	// element).
	IllegalAssignment
)

func (c ErrorCode) String() string {
	s, ok := map[ErrorCode]string{
		NotApplicable:     "NotApplicable",
		IndexExpected:     "IndexExpected",
		IndexOutOfBounds:  "IndexOutOfBounds",
		EmptySegment:      "EmptySegment",
		TerminalValue:     "TerminalValue",
		Exception:         "Exception",
		IllegalAssignment: "IllegalAssignment",
	}[c]
	if ok {
		return s
	}
	return "<unknown error code>"
}

// Error makes ErrorCode usable as an error value, which is how the
// ReturnCode policy surfaces write failures.
func (c ErrorCode) Error() string {
	return c.String()
}

// Error is the typed failure produced under the ReturnError policy. It
// carries the classified code, the full path being applied, the index of
// the offending segment (-1 when no single segment is at fault) and the
// underlying cause, if any.
type Error struct {
	Code    ErrorCode
	Path    path.Path
	Segment int
	Cause   error
	msg     string
}

func (e *Error) Error() string {
	at := ""
	if e.Segment >= 0 && e.Segment < e.Path.Len() {
		at = fmt.Sprintf(" at segment %d (%q)", e.Segment, e.Path.SegAt(e.Segment).String())
	}
	msg := e.msg
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if msg != "" {
		return fmt.Sprintf("pathwalk: %s on %q%s: %s", e.Code, e.Path.String(), at, msg)
	}
	return fmt.Sprintf("pathwalk: %s on %q%s", e.Code, e.Path.String(), at)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets callers match on the code: errors.Is(err, IndexOutOfBounds).
func (e *Error) Is(target error) bool {
	if c, ok := target.(ErrorCode); ok {
		return e.Code == c
	}
	return false
}

// deadEnd is the single classification of a failed step, produced once
// at detection; the policy is applied to it as a final step.
type deadEnd struct {
	code  ErrorCode
	p     path.Path
	seg   int
	cause error
	msg   string
}

func (d *deadEnd) err() *Error {
	return &Error{Code: d.code, Path: d.p, Segment: d.seg, Cause: d.cause, msg: d.msg}
}

// resolveRead renders a dead end as a read outcome under policy.
func (d *deadEnd) resolveRead(policy OnDeadEnd) (any, error) {
	switch policy {
	case ReturnNull:
		return nil, nil
	case ReturnCode:
		return d.code, nil
	default:
		return nil, d.err()
	}
}

// resolveWrite renders a dead end as a write outcome under policy.
func (d *deadEnd) resolveWrite(policy OnDeadEnd) error {
	switch policy {
	case ReturnNull:
		return nil
	case ReturnCode:
		return d.code
	default:
		return d.err()
	}
}
