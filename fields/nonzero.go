// Copyright (c) 2025 Visvasity LLC

package fields

import "fmt"

// NonZero holds an integer that is known not to be zero. Values come from
// MakeNonZero, MustNonZero or a successful TryRead; the zero value of
// NonZero itself is not a valid non-zero integer and is rejected on write.
type NonZero[T Integer] struct {
	v T
}

// MakeNonZero returns v as a NonZero and true, or false when v is zero.
func MakeNonZero[T Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// MustNonZero is like MakeNonZero but panics when v is zero.
func MustNonZero[T Integer](v T) NonZero[T] {
	n, ok := MakeNonZero(v)
	if !ok {
		panic("fields: MustNonZero called with zero")
	}
	return n
}

func (n NonZero[T]) Get() T {
	return n.v
}

// IsValid reports whether n was produced by a checked constructor.
func (n NonZero[T]) IsValid() bool {
	return n.v != 0
}

func (n NonZero[T]) String() string {
	return fmt.Sprint(n.v)
}

// NonZeroInt is an integer field whose domain excludes zero. The raw bytes
// are decoded with the field's byte order first and validated after.
type NonZeroInt[T Integer] struct {
	Meta
}

func NewNonZero[T Integer](name string, offset int, endian Endian) NonZeroInt[T] {
	return NonZeroInt[T]{NewMeta(name, offset, SizeFor[T](), endian)}
}

func (f NonZeroInt[T]) TryRead(data []byte) (NonZero[T], error) {
	x := decodeInt[T](f.span(data), f.endian.ByteOrder())
	if x == 0 {
		return NonZero[T]{}, zeroValue(f, x)
	}
	return NonZero[T]{v: x}, nil
}

// TryWrite fails only for the zero value of NonZero, before touching data.
func (f NonZeroInt[T]) TryWrite(data []byte, x NonZero[T]) error {
	b := f.span(data)
	if x.v == 0 {
		return zeroValue(f, x.v)
	}
	encodeInt(b, f.endian.ByteOrder(), x.v)
	return nil
}

// Write stores x. Every properly constructed NonZero is encodable, so this
// panics only on an uninitialized NonZero.
func (f NonZeroInt[T]) Write(data []byte, x NonZero[T]) {
	if err := f.TryWrite(data, x); err != nil {
		panic(err)
	}
}
