// Copyright (c) 2025 Visvasity LLC

package output

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/visvasity/fieldgen/fields"
	"github.com/visvasity/fieldgen/input"
)

func TestPageHeaderLittleEndian(t *testing.T) {
	buf := bytes.Repeat([]byte{0xff}, PageHeaderSize)
	v := NewPageHeaderMutView(fields.Exclusive(buf))
	v.MagicMut().Write(input.PageMagic)
	v.TypeMut().Write(input.DataBlockType)
	v.LevelMut().Write(-1)
	v.PageIDMut().Write(0x0102030405060708)
	v.LSNMut().Write(42)
	v.ChecksumMut().Write(0xdeadbeef)

	if got := binary.LittleEndian.Uint32(buf[0:]); got != input.PageMagic {
		t.Errorf("Magic bytes decode to %#x", got)
	}
	if got := binary.LittleEndian.Uint16(buf[4:]); got != uint16(input.DataBlockType) {
		t.Errorf("Type bytes decode to %d", got)
	}
	if buf[6] != 0xff {
		t.Errorf("Level byte = %#x, want 0xff", buf[6])
	}
	if got := binary.LittleEndian.Uint64(buf[8:]); got != 0x0102030405060708 {
		t.Errorf("PageID bytes decode to %#x", got)
	}
	if got := binary.LittleEndian.Uint32(buf[28:]); got != 0xdeadbeef {
		t.Errorf("Checksum bytes decode to %#x", got)
	}

	// Reserved bytes are never written.
	if buf[7] != 0xff {
		t.Errorf("reserved byte 7 = %#x", buf[7])
	}
	if !bytes.Equal(buf[24:28], []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("skipped bytes = % x", buf[24:28])
	}

	r := v.View()
	if got := r.Level().Read(); got != -1 {
		t.Errorf("Level = %d, want -1", got)
	}
	if got := r.LSN().Read(); got != 42 {
		t.Errorf("LSN = %d, want 42", got)
	}
	if got := r.PageID().Read(); got != input.PageID(0x0102030405060708) {
		t.Errorf("PageID = %#x", got)
	}
}

func TestPageHeaderFieldMetadata(t *testing.T) {
	v := NewPageHeaderView(fields.Shared(make([]byte, PageHeaderSize)))

	f := v.Checksum().Field()
	if f.Name() != "Checksum" || f.Offset() != 28 || f.Size() != 4 || f.Endian() != fields.LittleEndian {
		t.Fatalf("Checksum metadata = %s/%d/%d/%v", f.Name(), f.Offset(), f.Size(), f.Endian())
	}
	if PageHeaderSize != 32 {
		t.Fatalf("PageHeaderSize = %d, want 32", PageHeaderSize)
	}
}

func TestRecord(t *testing.T) {
	storage := fields.NewOwned(RecordSize + 3)
	v := NewRecordMutView(storage)
	id := fields.MustNonZero(input.RecordID(9))
	if err := v.IDMut().TryWrite(id); err != nil {
		t.Fatal(err)
	}
	v.ScoreMut().Write(math.Pi)
	v.KeyMut().Write([]byte("0123456789abcdef"))
	copy(v.ValueMut(), "xyz")

	buf := storage.Bytes()
	if got := binary.LittleEndian.Uint32(buf[0:]); got != 9 {
		t.Errorf("ID bytes decode to %d, want 9 in the default byte order", got)
	}
	if got := math.Float64frombits(binary.LittleEndian.Uint64(buf[4:])); got != math.Pi {
		t.Errorf("Score bytes decode to %v", got)
	}
	if got := string(buf[12:28]); got != "0123456789abcdef" {
		t.Errorf("Key bytes = %q", got)
	}
	if got := string(buf[RecordSize:]); got != "xyz" {
		t.Errorf("Value starts at %d with %q", RecordSize, got)
	}

	r := NewRecordView(storage.Shared())
	got, err := r.ID().TryRead()
	if err != nil || got != id {
		t.Errorf("ID = %v, %v; want %v", got, err, id)
	}

	// Key returns a copy.
	key := r.Key().Read()
	key[0] = 'X'
	if buf[12] != '0' {
		t.Errorf("modifying the Key copy changed the storage")
	}
}

func TestRecordZeroID(t *testing.T) {
	storage := fields.NewOwned(RecordSize)
	_, err := NewRecordView(storage).ID().TryRead()
	if !errors.Is(err, fields.ErrZero) {
		t.Fatalf("ID of zeroed storage = %v, want ErrZero", err)
	}
	var fe *fields.Error
	if !errors.As(err, &fe) || fe.Field != "ID" {
		t.Fatalf("error %v does not name the ID field", err)
	}
}
