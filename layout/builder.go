// Copyright (c) 2025 Visvasity LLC

// Package layout assembles field metadata into a validated layout at run
// time. Fields are placed one after another in declaration order unless an
// explicit offset is requested with At:
//
//	b := layout.New("header", fields.BigEndian)
//	magic := layout.Int[uint32](b, "magic")
//	length := layout.Int[uint16](b, "length")
//	body := layout.Tail(b, "body")
//	hdr, err := b.Build()
//
// The returned field values are ordinary fields.* metadata and are bound to
// storage with the fields view constructors.
package layout

import (
	"fmt"

	"github.com/visvasity/fieldgen/fields"
)

// Builder accumulates fields for a layout. A Builder is not safe for
// concurrent use.
type Builder struct {
	name   string
	endian fields.Endian
	next   int
	fields []fields.Field
}

func New(name string, endian fields.Endian) *Builder {
	return &Builder{name: name, endian: endian}
}

// Offset returns the offset the next field will be placed at.
func (b *Builder) Offset() int {
	return b.next
}

// Skip reserves n padding bytes before the next field.
func (b *Builder) Skip(n int) *Builder {
	if n < 0 {
		panic(fmt.Sprintf("layout: negative skip %d", n))
	}
	b.next += n
	return b
}

// At places the next field at an explicit offset. Overlaps with other fields
// are reported by Build.
func (b *Builder) At(offset int) *Builder {
	if offset < 0 {
		panic(fmt.Sprintf("layout: negative offset %d", offset))
	}
	b.next = offset
	return b
}

// Add appends a field built elsewhere. The next offset moves past it.
func (b *Builder) Add(f fields.Field) {
	b.fields = append(b.fields, f)
	if f.Size() != fields.Unbounded {
		b.next = f.Offset() + f.Size()
	} else {
		b.next = f.Offset()
	}
}

func add[F fields.Field](b *Builder, f F) F {
	b.Add(f)
	return f
}

func Int[T fields.Integer](b *Builder, name string) fields.Int[T] {
	return add(b, fields.NewInt[T](name, b.next, b.endian))
}

func Float[T fields.Float](b *Builder, name string) fields.FloatField[T] {
	return add(b, fields.NewFloat[T](name, b.next, b.endian))
}

func Array(b *Builder, name string, size int) fields.Array {
	return add(b, fields.NewArray(name, b.next, size, b.endian))
}

func NonZero[T fields.Integer](b *Builder, name string) fields.NonZeroInt[T] {
	return add(b, fields.NewNonZero[T](name, b.next, b.endian))
}

func Bool(b *Builder, name string) fields.Bool {
	return add(b, fields.NewBool(name, b.next, b.endian))
}

func Mapped[U fields.Integer, T any](b *Builder, name string, decode func(U) (T, error), encode func(T) (U, error)) fields.Mapped[U, T] {
	return add(b, fields.NewMapped(name, b.next, b.endian, decode, encode))
}

// Tail adds the trailing region. It must be the last field of the layout.
func Tail(b *Builder, name string) fields.Tail {
	return add(b, fields.NewTail(name, b.next, b.endian))
}
