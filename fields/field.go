// Copyright (c) 2025 Visvasity LLC

// Package fields provides typed, zero-copy access to fields of a fixed binary
// layout stored in a byte buffer.
//
// A field is immutable metadata: a name, a byte offset, a byte size (or
// Unbounded for a trailing region) and a byte order. What a field can do is
// expressed by the interfaces its concrete type implements:
//
//   - ReadExt and WriteExt for fields whose encoding always round-trips, so
//     Read and Write return no error;
//   - CopyAccess for fields whose logical domain is restricted, so reads (and
//     possibly writes) may fail with an *Error;
//   - Region for fields that expose their raw bytes.
//
// A view binds one field to one storage. Write views can only be constructed
// over Mutable storage, so a Shared buffer never reaches a write path.
//
//	var length = fields.NewInt[uint16]("length", 0, fields.BigEndian)
//
//	func bump(buf []byte) {
//		v := fields.NewMutView(fields.Exclusive(buf), length)
//		v.Write(v.Read() + 1)
//	}
package fields

// Unbounded is the size of a field that spans to the end of the buffer.
const Unbounded = -1

// Field is the metadata common to every field.
type Field interface {
	Name() string
	Offset() int
	// Size returns the byte size of the field, or Unbounded.
	Size() int
	Endian() Endian
}

// ReadExt is implemented by fields whose every byte pattern decodes to a
// valid value. Read panics only when data is too short to hold the field.
type ReadExt[T any] interface {
	Field
	Read(data []byte) T
}

// WriteExt is implemented by fields that can encode every value of T.
type WriteExt[T any] interface {
	Field
	Write(data []byte, v T)
}

type ReadWriteExt[T any] interface {
	ReadExt[T]
	WriteExt[T]
}

// CopyAccess is implemented by fields whose conversion between bytes and T
// can fail. TryWrite must not modify data when it returns an error.
type CopyAccess[T any] interface {
	Field
	TryRead(data []byte) (T, error)
	TryWrite(data []byte, v T) error
}

// InfallibleWrite marks a CopyAccess field whose write can never fail. Such
// fields also offer Write, so callers need not handle an error that cannot
// happen.
type InfallibleWrite[T any] interface {
	CopyAccess[T]
	WriteExt[T]
}

// Region is implemented by fields that expose their bytes directly.
type Region interface {
	Field
	Slice(data []byte) []byte
}

// Meta is the plain metadata record embedded by every concrete field type.
type Meta struct {
	name   string
	offset int
	size   int
	endian Endian
}

// NewMeta returns metadata for a field at offset spanning size bytes.
func NewMeta(name string, offset, size int, endian Endian) Meta {
	if offset < 0 {
		panic("fields: negative field offset")
	}
	if size < 0 && size != Unbounded {
		panic("fields: negative field size")
	}
	return Meta{name: name, offset: offset, size: size, endian: endian}
}

func (m Meta) Name() string   { return m.name }
func (m Meta) Offset() int    { return m.offset }
func (m Meta) Size() int      { return m.size }
func (m Meta) Endian() Endian { return m.endian }

// End returns the offset one past the field's last byte, or Unbounded.
func (m Meta) End() int {
	if m.size == Unbounded {
		return Unbounded
	}
	return m.offset + m.size
}

// span returns the field's bytes within data, panicking with an out of
// bounds *Error when data is too short.
func (m Meta) span(data []byte) []byte {
	if m.size == Unbounded {
		if m.offset > len(data) {
			panic(outOfBounds(m, len(data)))
		}
		return data[m.offset:]
	}
	end := m.offset + m.size
	if end > len(data) {
		panic(outOfBounds(m, len(data)))
	}
	return data[m.offset:end:end]
}

// InBounds reports whether data is long enough to hold field f.
func InBounds(f Field, data []byte) bool {
	if f.Size() == Unbounded {
		return f.Offset() <= len(data)
	}
	return f.Offset()+f.Size() <= len(data)
}

// CheckBounds returns an out of bounds *Error when data cannot hold f.
func CheckBounds(f Field, data []byte) error {
	if InBounds(f, data) {
		return nil
	}
	return outOfBounds(f, len(data))
}
