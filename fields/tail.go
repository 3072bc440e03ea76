// Copyright (c) 2025 Visvasity LLC

package fields

// Tail is the trailing region of a layout: every byte from its offset to the
// end of the buffer. It carries no length prefix.
type Tail struct {
	Meta
}

func NewTail(name string, offset int, endian Endian) Tail {
	return Tail{NewMeta(name, offset, Unbounded, endian)}
}

func (f Tail) Slice(data []byte) []byte {
	return f.span(data)
}

// Len returns the tail length for a buffer, which is len(data)-Offset.
func (f Tail) Len(data []byte) int {
	return len(f.span(data))
}
