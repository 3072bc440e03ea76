// Copyright (c) 2025 Visvasity LLC

package fields

// ReadOnly is the read capability of a storage: it can produce the bytes it
// covers for reading.
type ReadOnly interface {
	Bytes() []byte
}

// Mutable is the write capability of a storage. Holders of a Mutable storage
// are expected to be the only handle touching those bytes while a write is in
// progress.
type Mutable interface {
	ReadOnly
	MutBytes() []byte
}

// Shared is a read-only borrow of bytes owned elsewhere. It deliberately has
// no MutBytes method, so it cannot be bound to any write view.
type Shared []byte

func (s Shared) Bytes() []byte {
	return s
}

// Exclusive is a mutable borrow of bytes owned elsewhere.
type Exclusive []byte

func (e Exclusive) Bytes() []byte {
	return e
}

func (e Exclusive) MutBytes() []byte {
	return e
}

// Shared returns a read-only borrow of the same bytes.
func (e Exclusive) Shared() Shared {
	return Shared(e)
}

// Owned is a growable buffer owned by the storage itself. Views share an
// *Owned by pointer, so a Resize is visible to every view bound to it.
type Owned struct {
	buf []byte
}

// NewOwned returns a zero-filled owned buffer of the given size.
func NewOwned(size int) *Owned {
	return &Owned{buf: make([]byte, size)}
}

// OwnedFrom takes ownership of b. The caller must not use b afterwards.
// Capacity past len(b) is not taken, so growing never reaches into bytes
// the caller may still hold.
func OwnedFrom(b []byte) *Owned {
	return &Owned{buf: b[:len(b):len(b)]}
}

func (o *Owned) Bytes() []byte {
	return o.buf
}

func (o *Owned) MutBytes() []byte {
	return o.buf
}

func (o *Owned) Len() int {
	return len(o.buf)
}

// Resize sets the buffer length to n. Grown bytes are zero; shrinking drops
// the bytes past n.
func (o *Owned) Resize(n int) {
	if n < 0 {
		panic("fields: negative owned buffer size")
	}
	if n <= len(o.buf) {
		SetZero(o.buf[n:])
		o.buf = o.buf[:n]
		return
	}
	if n <= cap(o.buf) {
		old := len(o.buf)
		o.buf = o.buf[:n]
		SetZero(o.buf[old:])
		return
	}
	nb := make([]byte, n)
	copy(nb, o.buf)
	o.buf = nb
}

// Grow appends n zero bytes to the buffer.
func (o *Owned) Grow(n int) {
	o.Resize(len(o.buf) + n)
}

// Shared returns a read-only borrow of the current bytes. The borrow does not
// follow later resizes.
func (o *Owned) Shared() Shared {
	return Shared(o.buf)
}

// Exclusive returns a mutable borrow of the current bytes. The borrow does not
// follow later resizes.
func (o *Owned) Exclusive() Exclusive {
	return Exclusive(o.buf)
}
