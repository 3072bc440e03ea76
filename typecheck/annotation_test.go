// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"go/ast"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/visvasity/fieldgen/fields"
)

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		line    string
		want    *Annotation
		wantErr bool
	}{
		{line: "@layout", want: &Annotation{}},
		{line: "@layout endian=big", want: &Annotation{Endian: fields.BigEndian, HasEndian: true}},
		{line: "@layout endian=le size=64", want: &Annotation{Endian: fields.LittleEndian, HasEndian: true, Size: 64}},
		{line: "@layout size=0", wantErr: true},
		{line: "@layout size=-8", wantErr: true},
		{line: "@layout endian=middle", wantErr: true},
		{line: "@layout align=8", wantErr: true},
		{line: "@layout endian", wantErr: true},
		{line: "layout endian=big", wantErr: true},
		{line: "@layouts", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseAnnotation(test.line)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseAnnotation(%q) = %+v, want error", test.line, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnnotation(%q) failed: %v", test.line, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseAnnotation(%q) mismatch (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestCleanComment(t *testing.T) {
	tests := map[string]string{
		"// @layout endian=big":  "@layout endian=big",
		"//@layout":              "@layout",
		"/* @layout size=16 */":  "@layout size=16",
		"  plain text  ":         "plain text",
		"// Packet is a frame.":  "Packet is a frame.",
		"/*unterminated @layout": "/*unterminated @layout",
	}
	for in, want := range tests {
		if got := CleanComment(in); got != want {
			t.Errorf("CleanComment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindAnnotation(t *testing.T) {
	doc := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Packet is a frame."},
		{Text: "//"},
		{Text: "// @layout endian=big"},
	}}
	anno, err := FindAnnotation(doc)
	if err != nil {
		t.Fatal(err)
	}
	if anno == nil || !anno.HasEndian || anno.Endian != fields.BigEndian {
		t.Fatalf("FindAnnotation() = %+v, want endian=big", anno)
	}

	anno, err = FindAnnotation(&ast.CommentGroup{List: []*ast.Comment{{Text: "// no annotation"}}})
	if err != nil || anno != nil {
		t.Fatalf("FindAnnotation() = %+v, %v; want nil, nil", anno, err)
	}

	if anno, err := FindAnnotation(nil); err != nil || anno != nil {
		t.Fatalf("FindAnnotation(nil) = %+v, %v; want nil, nil", anno, err)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    *Tag
		wantErr bool
	}{
		{tag: ``, want: &Tag{Offset: -1}},
		{tag: `json:"x"`, want: &Tag{Offset: -1}},
		{tag: `layout:"@16"`, want: &Tag{Offset: 16}},
		{tag: `layout:"skip=4"`, want: &Tag{Offset: -1, Skip: 4}},
		{tag: `json:"x" layout:"skip=2"`, want: &Tag{Offset: -1, Skip: 2}},
		{tag: `layout:"@x"`, wantErr: true},
		{tag: `layout:"@-1"`, wantErr: true},
		{tag: `layout:"skip=0"`, wantErr: true},
		{tag: `layout:"pad=1"`, wantErr: true},
		{tag: `layout:"@8,skip=2"`, wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseTag(test.tag)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseTag(%q) = %+v, want error", test.tag, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTag(%q) failed: %v", test.tag, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseTag(%q) mismatch (-want +got):\n%s", test.tag, diff)
		}
	}
}
