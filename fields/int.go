// Copyright (c) 2025 Visvasity LLC

package fields

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// SizeFor returns the encoded size of a fixed size number type.
func SizeFor[T any]() int {
	return int(reflect.TypeFor[T]().Size())
}

func decodeInt[T Integer](b []byte, order binary.ByteOrder) T {
	switch len(b) {
	case 1:
		return T(b[0])
	case 2:
		return T(order.Uint16(b))
	case 4:
		return T(order.Uint32(b))
	case 8:
		return T(order.Uint64(b))
	}
	panic(fmt.Sprintf("fields: unhandled integer size %d", len(b)))
}

func encodeInt[T Integer](b []byte, order binary.ByteOrder, x T) {
	switch len(b) {
	case 1:
		b[0] = byte(x)
	case 2:
		order.PutUint16(b, uint16(x))
	case 4:
		order.PutUint32(b, uint32(x))
	case 8:
		order.PutUint64(b, uint64(x))
	default:
		panic(fmt.Sprintf("fields: unhandled integer size %d", len(b)))
	}
}

// Int is a fixed size integer field. Every byte pattern is a valid integer,
// so Int implements ReadExt and WriteExt.
type Int[T Integer] struct {
	Meta
}

func NewInt[T Integer](name string, offset int, endian Endian) Int[T] {
	return Int[T]{NewMeta(name, offset, SizeFor[T](), endian)}
}

func (f Int[T]) Read(data []byte) T {
	return decodeInt[T](f.span(data), f.endian.ByteOrder())
}

func (f Int[T]) Write(data []byte, x T) {
	encodeInt(f.span(data), f.endian.ByteOrder(), x)
}
