// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"
	"go/ast"
	"regexp"
	"strconv"
	"strings"

	"github.com/visvasity/fieldgen/fields"
)

// Annotation holds the parameters of a `// @layout` doc comment line.
type Annotation struct {
	// Endian overrides the generator's default byte order when HasEndian is
	// set.
	Endian    fields.Endian
	HasEndian bool

	// Size, when non-zero, is the minimum size of the fixed-size prefix. The
	// checker pads the layout up to Size and rejects layouts larger than it.
	Size int64
}

var (
	annotationRe = regexp.MustCompile(`^@layout(?:\s+(.*))?$`)
	paramRe      = regexp.MustCompile(`^(\w+)=([\w-]+)$`)
)

// ParseAnnotation parses a cleaned comment line of the form
//
//	@layout
//	@layout endian=big
//	@layout endian=little size=64
func ParseAnnotation(line string) (*Annotation, error) {
	m := annotationRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("no @layout annotation in %q", line)
	}

	anno := new(Annotation)
	for _, param := range strings.Fields(m[1]) {
		kv := paramRe.FindStringSubmatch(param)
		if kv == nil {
			return nil, fmt.Errorf("malformed @layout parameter %q", param)
		}
		switch key, value := kv[1], kv[2]; key {
		case "endian":
			e, err := fields.ParseEndian(value)
			if err != nil {
				return nil, err
			}
			anno.Endian, anno.HasEndian = e, true
		case "size":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("size must be a positive integer, got %q", value)
			}
			anno.Size = n
		default:
			return nil, fmt.Errorf("unknown @layout parameter %q", key)
		}
	}
	return anno, nil
}

// CleanComment strips comment markers from a single comment.
func CleanComment(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "//") {
		return strings.TrimSpace(strings.TrimPrefix(text, "//"))
	}
	if strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/") {
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
		return strings.TrimSpace(text)
	}
	return text
}

// FindAnnotation returns the first @layout annotation in the comment group.
// It returns nil without error when the group has no annotation.
func FindAnnotation(doc *ast.CommentGroup) (*Annotation, error) {
	if doc == nil {
		return nil, nil
	}
	for _, c := range doc.List {
		line := CleanComment(c.Text)
		if !strings.HasPrefix(line, "@layout") {
			continue
		}
		return ParseAnnotation(line)
	}
	return nil, nil
}
