// Copyright (c) 2025 Visvasity LLC

package fields

import "fmt"

// Array is a fixed size byte array field. It is order independent; the
// endian is recorded only as layout metadata.
type Array struct {
	Meta
}

func NewArray(name string, offset, size int, endian Endian) Array {
	if size == Unbounded {
		panic("fields: array size must be bounded")
	}
	return Array{NewMeta(name, offset, size, endian)}
}

// Read returns a copy of the array bytes.
func (f Array) Read(data []byte) []byte {
	bs := make([]byte, f.size)
	copy(bs, f.span(data))
	return bs
}

// Write copies v into the array. v must be exactly Size bytes long.
func (f Array) Write(data []byte, v []byte) {
	if len(v) != f.size {
		panic(fmt.Sprintf("fields: array %s holds %d bytes, got %d", f.name, f.size, len(v)))
	}
	copy(f.span(data), v)
}

// Slice returns the array bytes without copying.
func (f Array) Slice(data []byte) []byte {
	return f.span(data)
}
