// Copyright (c) 2025 Visvasity LLC

package fields

// View binds a ReadExt field to storage with read-only access. Creating a
// view performs no bounds check; Read panics if the storage is too short.
type View[S ReadOnly, T any] struct {
	storage S
	field   ReadExt[T]
}

func NewView[S ReadOnly, T any](storage S, field ReadExt[T]) View[S, T] {
	return View[S, T]{storage: storage, field: field}
}

func (v View[S, T]) Field() Field {
	return v.field
}

func (v View[S, T]) Storage() S {
	return v.storage
}

func (v View[S, T]) Read() T {
	return v.field.Read(v.storage.Bytes())
}

// MutView binds a ReadExt and WriteExt field to mutable storage.
type MutView[S Mutable, T any] struct {
	storage S
	field   ReadWriteExt[T]
}

func NewMutView[S Mutable, T any](storage S, field ReadWriteExt[T]) MutView[S, T] {
	return MutView[S, T]{storage: storage, field: field}
}

func (v MutView[S, T]) Field() Field {
	return v.field
}

func (v MutView[S, T]) Storage() S {
	return v.storage
}

// View returns the read-only view of the same field and storage.
func (v MutView[S, T]) View() View[S, T] {
	return View[S, T]{storage: v.storage, field: v.field}
}

func (v MutView[S, T]) Read() T {
	return v.field.Read(v.storage.Bytes())
}

// Write overwrites exactly Size bytes at the field's offset.
func (v MutView[S, T]) Write(x T) {
	v.field.Write(v.storage.MutBytes(), x)
}

// TryView binds a CopyAccess field to storage with read-only access.
type TryView[S ReadOnly, T any] struct {
	storage S
	field   CopyAccess[T]
}

func NewTryView[S ReadOnly, T any](storage S, field CopyAccess[T]) TryView[S, T] {
	return TryView[S, T]{storage: storage, field: field}
}

func (v TryView[S, T]) Field() Field {
	return v.field
}

func (v TryView[S, T]) Storage() S {
	return v.storage
}

// TryRead returns the field's value or an *Error when the stored bytes are
// outside the field's domain.
func (v TryView[S, T]) TryRead() (T, error) {
	return v.field.TryRead(v.storage.Bytes())
}

// TryMutView binds a CopyAccess field to mutable storage.
type TryMutView[S Mutable, T any] struct {
	storage S
	field   CopyAccess[T]
}

func NewTryMutView[S Mutable, T any](storage S, field CopyAccess[T]) TryMutView[S, T] {
	return TryMutView[S, T]{storage: storage, field: field}
}

func (v TryMutView[S, T]) Field() Field {
	return v.field
}

func (v TryMutView[S, T]) Storage() S {
	return v.storage
}

func (v TryMutView[S, T]) View() TryView[S, T] {
	return TryView[S, T]{storage: v.storage, field: v.field}
}

func (v TryMutView[S, T]) TryRead() (T, error) {
	return v.field.TryRead(v.storage.Bytes())
}

// TryWrite stores x, or returns an *Error and leaves the storage untouched.
func (v TryMutView[S, T]) TryWrite(x T) error {
	return v.field.TryWrite(v.storage.MutBytes(), x)
}

// InfallibleMutView binds a CopyAccess field whose writes cannot fail to
// mutable storage. Reads stay fallible; Write needs no error handling.
type InfallibleMutView[S Mutable, T any] struct {
	storage S
	field   InfallibleWrite[T]
}

func NewInfallibleMutView[S Mutable, T any](storage S, field InfallibleWrite[T]) InfallibleMutView[S, T] {
	return InfallibleMutView[S, T]{storage: storage, field: field}
}

func (v InfallibleMutView[S, T]) Field() Field {
	return v.field
}

func (v InfallibleMutView[S, T]) Storage() S {
	return v.storage
}

func (v InfallibleMutView[S, T]) View() TryView[S, T] {
	return TryView[S, T]{storage: v.storage, field: v.field}
}

func (v InfallibleMutView[S, T]) TryRead() (T, error) {
	return v.field.TryRead(v.storage.Bytes())
}

func (v InfallibleMutView[S, T]) TryWrite(x T) error {
	return v.field.TryWrite(v.storage.MutBytes(), x)
}

func (v InfallibleMutView[S, T]) Write(x T) {
	v.field.Write(v.storage.MutBytes(), x)
}

// RegionView exposes a Region field's bytes from read-only storage.
type RegionView[S ReadOnly] struct {
	storage S
	field   Region
}

func NewRegionView[S ReadOnly](storage S, field Region) RegionView[S] {
	return RegionView[S]{storage: storage, field: field}
}

func (v RegionView[S]) Field() Field {
	return v.field
}

func (v RegionView[S]) Storage() S {
	return v.storage
}

// Data returns the region's bytes without copying. The caller must not
// modify them.
func (v RegionView[S]) Data() []byte {
	return v.field.Slice(v.storage.Bytes())
}

func (v RegionView[S]) Len() int {
	return len(v.Data())
}

// RegionMutView exposes a Region field's bytes from mutable storage.
type RegionMutView[S Mutable] struct {
	storage S
	field   Region
}

func NewRegionMutView[S Mutable](storage S, field Region) RegionMutView[S] {
	return RegionMutView[S]{storage: storage, field: field}
}

func (v RegionMutView[S]) Field() Field {
	return v.field
}

func (v RegionMutView[S]) Storage() S {
	return v.storage
}

func (v RegionMutView[S]) View() RegionView[S] {
	return RegionView[S]{storage: v.storage, field: v.field}
}

func (v RegionMutView[S]) Data() []byte {
	return v.field.Slice(v.storage.Bytes())
}

// MutData returns the region's bytes for in-place modification.
func (v RegionMutView[S]) MutData() []byte {
	return v.field.Slice(v.storage.MutBytes())
}

func (v RegionMutView[S]) Len() int {
	return len(v.Data())
}
