// Copyright (c) 2025 Visvasity LLC

package layout

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/visvasity/fieldgen/fields"
)

// Layout is an immutable, validated list of fields sharing one byte order.
type Layout struct {
	name   string
	endian fields.Endian
	size   int
	tail   fields.Field
	fields []fields.Field
	index  map[string]int
}

// BuildError lists every problem found while validating a layout.
type BuildError struct {
	Layout   string
	Problems []string
}

func (e *BuildError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("layout %s: %s", e.Layout, e.Problems[0])
	}
	return fmt.Sprintf("layout %s has %d errors: %s", e.Layout, len(e.Problems), strings.Join(e.Problems, "; "))
}

// Build validates the accumulated fields and returns the layout. Field names
// must be unique and non-empty and bounded fields must not overlap. A
// trailing region, if any, must be the only one, be declared last and start
// at or after the end of every bounded field.
func (b *Builder) Build() (*Layout, error) {
	l := &Layout{
		name:   b.name,
		endian: b.endian,
		fields: slices.Clone(b.fields),
		index:  make(map[string]int, len(b.fields)),
	}

	var problems []string
	for i, f := range l.fields {
		if f.Name() == "" {
			problems = append(problems, fmt.Sprintf("field #%d has no name", i))
			continue
		}
		if j, ok := l.index[f.Name()]; ok {
			problems = append(problems, fmt.Sprintf("field %q declared twice (#%d and #%d)", f.Name(), j, i))
			continue
		}
		l.index[f.Name()] = i
	}

	var bounded []fields.Field
	for _, f := range l.fields {
		if f.Size() != fields.Unbounded {
			if l.tail != nil {
				problems = append(problems, fmt.Sprintf("field %q is declared after trailing region %q", f.Name(), l.tail.Name()))
			}
			bounded = append(bounded, f)
			l.size = max(l.size, f.Offset()+f.Size())
			continue
		}
		if l.tail != nil {
			problems = append(problems, fmt.Sprintf("trailing regions %q and %q: only one is allowed", l.tail.Name(), f.Name()))
			continue
		}
		l.tail = f
	}

	slices.SortStableFunc(bounded, func(x, y fields.Field) int {
		return x.Offset() - y.Offset()
	})
	for i := 0; i+1 < len(bounded); i++ {
		r1, r2 := bounded[i], bounded[i+1]
		if r1.Offset()+r1.Size() > r2.Offset() {
			problems = append(problems, fmt.Sprintf("collision: %s [%d, %d) overlaps %s [%d, %d)",
				r1.Name(), r1.Offset(), r1.Offset()+r1.Size(),
				r2.Name(), r2.Offset(), r2.Offset()+r2.Size()))
		}
	}

	if l.tail != nil {
		if l.tail.Offset() < l.size {
			problems = append(problems, fmt.Sprintf("trailing region %q at offset %d starts before the end of the fixed fields at %d",
				l.tail.Name(), l.tail.Offset(), l.size))
		}
		l.size = max(l.size, l.tail.Offset())
	}

	if len(problems) > 0 {
		Logger().Debug("layout rejected", zap.String("layout", b.name), zap.Strings("problems", problems))
		return nil, &BuildError{Layout: b.name, Problems: problems}
	}

	Logger().Debug("layout built",
		zap.String("layout", l.name),
		zap.Stringer("endian", l.endian),
		zap.Int("fields", len(l.fields)),
		zap.Int("size", l.size),
		zap.Bool("tail", l.tail != nil))
	return l, nil
}

// MustBuild is like Build but panics on error. It is meant for package
// level layout variables.
func (b *Builder) MustBuild() *Layout {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) Name() string          { return l.name }
func (l *Layout) Endian() fields.Endian { return l.endian }

// Size returns the size of the fixed part of the layout, i.e. the minimum
// buffer length every bounded field fits in.
func (l *Layout) Size() int { return l.size }

func (l *Layout) HasTail() bool { return l.tail != nil }

// Fields returns the fields in declaration order.
func (l *Layout) Fields() []fields.Field {
	return slices.Clone(l.fields)
}

func (l *Layout) Lookup(name string) (fields.Field, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.fields[i], true
}

// Check returns an error when data is too short to hold every field.
func (l *Layout) Check(data []byte) error {
	for _, f := range l.fields {
		if err := fields.CheckBounds(f, data); err != nil {
			return fmt.Errorf("layout %s: %w", l.name, err)
		}
	}
	return nil
}

// String renders the layout as a table of fields and byte ranges.
func (l *Layout) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s endian, %d bytes", l.name, l.endian, l.size)
	if l.tail != nil {
		sb.WriteString(" + tail")
	}
	sb.WriteString(")\n")

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, f := range l.fields {
		if f.Size() == fields.Unbounded {
			fmt.Fprintf(tw, "  %s\t[%d, end)\t%T\n", f.Name(), f.Offset(), f)
			continue
		}
		fmt.Fprintf(tw, "  %s\t[%d, %d)\t%T\n", f.Name(), f.Offset(), f.Offset()+f.Size(), f)
	}
	tw.Flush()
	return sb.String()
}
