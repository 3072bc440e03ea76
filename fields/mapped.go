// Copyright (c) 2025 Visvasity LLC

package fields

// Mapped stores a value of type T through an integer encoding U. The decode
// and encode functions define which encodings and values are valid; either
// may fail, so Mapped only offers CopyAccess.
type Mapped[U Integer, T any] struct {
	Meta
	decode func(U) (T, error)
	encode func(T) (U, error)
}

func NewMapped[U Integer, T any](name string, offset int, endian Endian, decode func(U) (T, error), encode func(T) (U, error)) Mapped[U, T] {
	if decode == nil || encode == nil {
		panic("fields: mapped field needs both decode and encode functions")
	}
	return Mapped[U, T]{
		Meta:   NewMeta(name, offset, SizeFor[U](), endian),
		decode: decode,
		encode: encode,
	}
}

func (f Mapped[U, T]) TryRead(data []byte) (T, error) {
	u := decodeInt[U](f.span(data), f.endian.ByteOrder())
	x, err := f.decode(u)
	if err != nil {
		var zero T
		return zero, invalidValue(f, u, err)
	}
	return x, nil
}

// TryWrite encodes x fully before committing any byte.
func (f Mapped[U, T]) TryWrite(data []byte, x T) error {
	b := f.span(data)
	u, err := f.encode(x)
	if err != nil {
		return unencodable(f, x, err)
	}
	encodeInt(b, f.endian.ByteOrder(), u)
	return nil
}
