// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/packages"

	"github.com/visvasity/fieldgen/fields"
)

const inputPkgPath = "github.com/visvasity/fieldgen/input"

func loadInput(t *testing.T) *packages.Package {
	t.Helper()
	pkg, err := LoadPackage(inputPkgPath)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

func check(t *testing.T, c *Checker, name string) (*StructData, error) {
	t.Helper()
	tname, err := c.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return c.Check(tname)
}

func TestCheckerPacket(t *testing.T) {
	c := New(loadInput(t), fields.LittleEndian)
	sdata, err := check(t, c, "Packet")
	if err != nil {
		t.Fatal(err)
	}

	want := &StructData{
		StructName: "Packet",
		PkgPath:    inputPkgPath,
		PkgName:    "input",
		Endian:     fields.BigEndian,
		Size:       24,
		Fields: []*FieldData{
			{Index: 0, FieldName: "Kind", Kind: "int", BasicKind: "uint8", TypeName: "PacketKind", TypePkgPath: inputPkgPath, TypePkgName: "input", Offset: 0, Size: 1},
			{Index: 1, FieldName: "Flags", Kind: "int", BasicKind: "uint8", Offset: 1, Size: 1},
			{Index: 2, FieldName: "Length", Kind: "int", BasicKind: "uint16", Offset: 2, Size: 2},
			{Index: 3, FieldName: "Seq", Kind: "nonzero", BasicKind: "uint32", Offset: 4, Size: 4},
			{Index: 4, FieldName: "Urgent", Kind: "bool", Offset: 8, Size: 1},
			{Index: 5, FieldName: "Ratio", Kind: "float", BasicKind: "float32", Offset: 12, Size: 4},
			{Index: 6, FieldName: "Session", Kind: "array", Offset: 16, Size: 8},
			{Index: 7, FieldName: "Payload", Kind: "tail", Offset: 24, Size: fields.Unbounded},
		},
	}
	if diff := cmp.Diff(want, sdata); diff != "" {
		t.Fatalf("Packet layout mismatch (-want +got):\n%s", diff)
	}
	if sdata.Tail() != sdata.Fields[7] {
		t.Fatalf("Tail() did not return the Payload field")
	}
}

func TestCheckerPageHeader(t *testing.T) {
	c := New(loadInput(t), fields.BigEndian)
	sdata, err := check(t, c, "PageHeader")
	if err != nil {
		t.Fatal(err)
	}
	if sdata.Endian != fields.LittleEndian {
		t.Errorf("endian = %v, want annotation's little", sdata.Endian)
	}
	if sdata.Size != 32 {
		t.Errorf("size = %d, want 32 from the annotation", sdata.Size)
	}
	if sdata.Tail() != nil {
		t.Errorf("PageHeader must not have a trailing region")
	}

	offsets := make(map[string]int64)
	for _, f := range sdata.Fields {
		offsets[f.FieldName] = f.Offset
	}
	wantOffsets := map[string]int64{
		"Magic":    0,
		"Type":     4,
		"Level":    6,
		"PageID":   8,
		"LSN":      16,
		"Checksum": 28,
	}
	if diff := cmp.Diff(wantOffsets, offsets); diff != "" {
		t.Fatalf("PageHeader offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckerDefaultEndian(t *testing.T) {
	c := New(loadInput(t), fields.BigEndian)
	sdata, err := check(t, c, "Record")
	if err != nil {
		t.Fatal(err)
	}
	if sdata.Endian != fields.BigEndian {
		t.Errorf("endian = %v, want the checker default", sdata.Endian)
	}
	if sdata.Size != 32 {
		t.Errorf("size = %d, want 32", sdata.Size)
	}
	id := sdata.Fields[0]
	if id.Kind != "nonzero" || id.TypeName != "RecordID" || id.BasicKind != "uint32" {
		t.Errorf("ID field = %+v, want a nonzero RecordID", id)
	}
	if tail := sdata.Tail(); tail == nil || tail.Offset != 32 {
		t.Errorf("Value tail = %+v, want offset 32", tail)
	}
}

func TestCheckerErrors(t *testing.T) {
	c := New(loadInput(t), fields.LittleEndian)

	tests := []struct {
		name string
		want string
	}{
		{"InvalidTailNotLast", "follows the trailing region"},
		{"InvalidPlatformInt", "has no fixed size"},
		{"InvalidOverlap", "overlaps the previous field"},
		{"InvalidNestedStruct", "struct fields are not supported"},
		{"InvalidInt64Slice", "only byte slices are supported"},
		{"InvalidTooLarge", "@layout size is 4"},
		{"InvalidAnnotation", "middle"},
		{"InvalidBlank", "blank field must be a byte array"},
		{"InvalidEmpty", "struct has no fields"},
		{"InvalidTailOffset", "placed at offset 8 but the fixed fields end at 16"},
		{"PageMagic", "is not a typename"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tname, err := c.Lookup(test.name)
			if err == nil {
				_, err = c.Check(tname)
			}
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not contain %q", err, test.want)
			}
		})
	}

	if _, err := c.Lookup("NoSuchType"); err == nil {
		t.Fatalf("Lookup of a missing type must fail")
	}
}

func TestCheckerCachesResults(t *testing.T) {
	c := New(loadInput(t), fields.LittleEndian)

	first, err := check(t, c, "Packet")
	if err != nil {
		t.Fatal(err)
	}
	second, err := check(t, c, "Packet")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("Check did not return the cached layout")
	}

	_, err1 := check(t, c, "InvalidOverlap")
	_, err2 := check(t, c, "InvalidOverlap")
	if err1 == nil || err1 != err2 {
		t.Fatalf("Check did not cache the failure: %v, %v", err1, err2)
	}
}

func TestStructDataLayout(t *testing.T) {
	c := New(loadInput(t), fields.LittleEndian)
	sdata, err := check(t, c, "Record")
	if err != nil {
		t.Fatal(err)
	}
	l, err := sdata.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if l.Name() != "Record" || l.Size() != 32 || !l.HasTail() {
		t.Fatalf("layout = %s", l)
	}
	f, ok := l.Lookup("Key")
	if !ok || f.Offset() != 12 || f.Size() != 16 {
		t.Fatalf("Key field = %v, %v", f, ok)
	}
	if err := l.Check(make([]byte, 31)); err == nil {
		t.Fatalf("a 31 byte buffer must not cover Record")
	}

	broken := &StructData{
		StructName: "Broken",
		Fields: []*FieldData{
			{FieldName: "A", Kind: "int", BasicKind: "uint32", Offset: 0, Size: 4},
			{FieldName: "B", Kind: "int", BasicKind: "uint16", Offset: 2, Size: 2},
		},
	}
	if _, err := broken.Layout(); err == nil || !strings.Contains(err.Error(), "collision") {
		t.Fatalf("overlapping fields built without a collision error: %v", err)
	}
}
