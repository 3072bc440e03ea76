// Copyright (c) 2025 Visvasity LLC

package fields

import (
	"fmt"
	"strings"
)

// Kind categorizes a field access error.
type Kind string

const (
	KindOutOfBounds  Kind = "out_of_bounds"
	KindZero         Kind = "zero"
	KindInvalidValue Kind = "invalid_value"
	KindUnencodable  Kind = "unencodable"
)

// Error describes a failed field access. Domain violations are returned from
// TryRead and TryWrite; bounds violations are raised as panics carrying an
// *Error.
type Error struct {
	Field  string
	Kind   Kind
	Detail string
	Value  any
	Cause  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("fields: ")
	b.WriteString(string(e.Kind))
	if e.Field != "" {
		b.WriteString(" in field ")
		b.WriteString(e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind, so errors.Is works
// against the Err* sentinels.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrOutOfBounds  = &Error{Kind: KindOutOfBounds}
	ErrZero         = &Error{Kind: KindZero}
	ErrInvalidValue = &Error{Kind: KindInvalidValue}
	ErrUnencodable  = &Error{Kind: KindUnencodable}
)

func outOfBounds(f Field, length int) *Error {
	detail := fmt.Sprintf("offset %d size %d exceeds buffer length %d", f.Offset(), f.Size(), length)
	if f.Size() == Unbounded {
		detail = fmt.Sprintf("offset %d exceeds buffer length %d", f.Offset(), length)
	}
	return &Error{
		Field:  f.Name(),
		Kind:   KindOutOfBounds,
		Detail: detail,
	}
}

// zeroValue reports a zero v, typed as the field's underlying integer.
func zeroValue(f Field, v any) *Error {
	return &Error{
		Field:  f.Name(),
		Kind:   KindZero,
		Detail: "value was zero but the field's domain excludes zero",
		Value:  v,
	}
}

func invalidValue(f Field, v any, cause error) *Error {
	return &Error{
		Field:  f.Name(),
		Kind:   KindInvalidValue,
		Detail: fmt.Sprintf("encoded value %v is not valid", v),
		Value:  v,
		Cause:  cause,
	}
}

func unencodable(f Field, v any, cause error) *Error {
	return &Error{
		Field:  f.Name(),
		Kind:   KindUnencodable,
		Detail: fmt.Sprintf("value %v has no valid encoding", v),
		Value:  v,
		Cause:  cause,
	}
}
