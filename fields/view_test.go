// Copyright (c) 2025 Visvasity LLC

package fields

import (
	"bytes"
	"math"
	"testing"
)

func TestTail(t *testing.T) {
	const offset = 6
	for _, size := range []int{6, 7, 32} {
		buf := make([]byte, size)
		f := NewTail("tail", offset, LittleEndian)

		v := NewRegionMutView(Exclusive(buf), f)
		if got := v.Len(); got != size-offset {
			t.Errorf("len %d: wanted tail length %d, got %d", size, size-offset, got)
		}
		if got := f.Len(buf); got != size-offset {
			t.Errorf("len %d: Tail.Len = %d", size, got)
		}
		if size-offset == 0 {
			continue
		}

		k := min(5, size-offset)
		copy(v.MutData()[:k], []byte{1, 2, 3, 4, 5})
		fresh := NewRegionView(Shared(buf), f).Data()
		if !bytes.Equal(fresh[:k], []byte{1, 2, 3, 4, 5}[:k]) {
			t.Errorf("len %d: write through MutData not visible: %x", size, fresh)
		}
	}
}

func TestTailPastEndPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("wanted panic for tail offset past buffer end")
		}
	}()
	NewRegionView(Shared(make([]byte, 3)), NewTail("tail", 4, LittleEndian)).Data()
}

func TestArray(t *testing.T) {
	f := NewArray("key", 2, 4, LittleEndian)
	buf := make([]byte, 8)

	v := NewMutView(Exclusive(buf), f)
	v.Write([]byte{9, 8, 7, 6})
	if !bytes.Equal(buf, []byte{0, 0, 9, 8, 7, 6, 0, 0}) {
		t.Fatalf("unexpected encoding %x", buf)
	}

	got := v.Read()
	got[0] = 0
	if buf[2] != 9 {
		t.Fatalf("Read must return a copy")
	}

	r := NewRegionMutView(Exclusive(buf), f)
	r.MutData()[3] = 1
	if !bytes.Equal(v.Read(), []byte{9, 8, 7, 1}) {
		t.Fatalf("region write not visible: %x", v.Read())
	}
}

func TestArrayWrongLengthPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("wanted panic writing 3 bytes into a 4 byte array")
		}
	}()
	NewArray("key", 0, 4, LittleEndian).Write(make([]byte, 4), []byte{1, 2, 3})
}

func TestFloatRoundTrip(t *testing.T) {
	f32 := NewFloat[float32]("f32", 0, BigEndian)
	f64 := NewFloat[float64]("f64", 4, LittleEndian)
	buf := make([]byte, 12)
	v32 := NewMutView(Exclusive(buf), f32)
	v64 := NewMutView(Exclusive(buf), f64)

	for _, x := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)} {
		v64.Write(x)
		if got := v64.Read(); got != x {
			t.Errorf("float64: wrote %v, read %v", x, got)
		}
	}
	for _, x := range []float32{0, 1.5, -2.25, math.MaxFloat32} {
		v32.Write(x)
		if got := v32.Read(); got != x {
			t.Errorf("float32: wrote %v, read %v", x, got)
		}
	}

	nan := math.Float64frombits(0x7ff8000000000123)
	v64.Write(nan)
	if bits := math.Float64bits(v64.Read()); bits != 0x7ff8000000000123 {
		t.Fatalf("NaN payload not preserved: %#x", bits)
	}

	v32.Write(1)
	if !bytes.Equal(buf[:4], []byte{0x3f, 0x80, 0, 0}) {
		t.Fatalf("float32 big endian encoding: %x", buf[:4])
	}
}

func TestViewAccessors(t *testing.T) {
	buf := make([]byte, 4)
	f := NewInt[uint16]("v", 2, LittleEndian)
	mv := NewMutView(Exclusive(buf), f)

	if mv.Field().Name() != "v" || mv.Field().Offset() != 2 || mv.Field().Size() != 2 {
		t.Fatalf("unexpected field metadata %v", mv.Field())
	}
	mv.Write(5)
	if got := mv.View().Read(); got != 5 {
		t.Fatalf("wanted 5 through View(), got %d", got)
	}
	if &mv.Storage()[0] != &buf[0] {
		t.Fatalf("view must reference the caller's buffer, not a copy")
	}
}

func TestMetaEnd(t *testing.T) {
	if end := NewInt[uint64]("x", 8, LittleEndian).End(); end != 16 {
		t.Fatalf("wanted 16, got %d", end)
	}
	if end := NewTail("t", 8, LittleEndian).End(); end != Unbounded {
		t.Fatalf("wanted Unbounded, got %d", end)
	}
}
