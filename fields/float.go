// Copyright (c) 2025 Visvasity LLC

package fields

import "math"

// FloatField is an IEEE 754 floating point field. NaN payloads are kept
// bit for bit.
type FloatField[T Float] struct {
	Meta
}

func NewFloat[T Float](name string, offset int, endian Endian) FloatField[T] {
	return FloatField[T]{NewMeta(name, offset, SizeFor[T](), endian)}
}

func (f FloatField[T]) Read(data []byte) T {
	b := f.span(data)
	order := f.endian.ByteOrder()
	if len(b) == 4 {
		return T(math.Float32frombits(order.Uint32(b)))
	}
	return T(math.Float64frombits(order.Uint64(b)))
}

func (f FloatField[T]) Write(data []byte, x T) {
	b := f.span(data)
	order := f.endian.ByteOrder()
	if len(b) == 4 {
		order.PutUint32(b, math.Float32bits(float32(x)))
		return
	}
	order.PutUint64(b, math.Float64bits(float64(x)))
}
