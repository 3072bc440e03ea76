// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Tag holds the parsed `layout:"..."` struct tag of a field.
type Tag struct {
	// Offset is the absolute offset of the field, or -1 when the field
	// follows its predecessor.
	Offset int64

	// Skip is the number of reserved bytes placed before the field.
	Skip int64
}

// ParseTag parses the layout key of a struct tag. Supported forms are
//
//	layout:"@16"      field starts at offset 16
//	layout:"skip=4"   four reserved bytes precede the field
//
// An absent tag yields a Tag with Offset -1 and no skip.
func ParseTag(structTag string) (*Tag, error) {
	tag := &Tag{Offset: -1}
	value, ok := reflect.StructTag(structTag).Lookup("layout")
	if !ok {
		return tag, nil
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case strings.HasPrefix(part, "@"):
			n, err := strconv.ParseInt(strings.TrimPrefix(part, "@"), 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid offset %q", part)
			}
			tag.Offset = n
		case strings.HasPrefix(part, "skip="):
			n, err := strconv.ParseInt(strings.TrimPrefix(part, "skip="), 10, 64)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid skip %q", part)
			}
			tag.Skip = n
		default:
			return nil, fmt.Errorf("unknown layout tag option %q", part)
		}
	}
	if tag.Offset >= 0 && tag.Skip > 0 {
		return nil, fmt.Errorf("layout tag %q mixes an absolute offset with skip", value)
	}
	return tag, nil
}
