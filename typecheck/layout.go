// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"

	"github.com/visvasity/fieldgen/fields"
	"github.com/visvasity/fieldgen/layout"
)

// Layout builds the run time layout for the struct. Building it repeats the
// overlap and trailing region checks on the computed offsets.
func (sd *StructData) Layout() (*layout.Layout, error) {
	b := layout.New(sd.StructName, sd.Endian)
	for _, f := range sd.Fields {
		b.At(int(f.Offset))
		if err := addField(b, f); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func addField(b *layout.Builder, f *FieldData) error {
	name := f.FieldName
	switch f.Kind {
	case "bool":
		layout.Bool(b, name)
	case "array":
		layout.Array(b, name, int(f.Size))
	case "tail":
		layout.Tail(b, name)
	case "float":
		switch f.BasicKind {
		case "float32":
			layout.Float[float32](b, name)
		case "float64":
			layout.Float[float64](b, name)
		default:
			return fmt.Errorf("field %s: unexpected float kind %q", name, f.BasicKind)
		}
	case "int", "nonzero":
		return addInt(b, name, f.BasicKind, f.Kind == "nonzero")
	default:
		return fmt.Errorf("field %s: unknown kind %q", name, f.Kind)
	}
	return nil
}

func addInt(b *layout.Builder, name, kind string, nonZero bool) error {
	switch kind {
	case "int8":
		addInteger[int8](b, name, nonZero)
	case "int16":
		addInteger[int16](b, name, nonZero)
	case "int32":
		addInteger[int32](b, name, nonZero)
	case "int64":
		addInteger[int64](b, name, nonZero)
	case "uint8":
		addInteger[uint8](b, name, nonZero)
	case "uint16":
		addInteger[uint16](b, name, nonZero)
	case "uint32":
		addInteger[uint32](b, name, nonZero)
	case "uint64":
		addInteger[uint64](b, name, nonZero)
	default:
		return fmt.Errorf("field %s: unexpected integer kind %q", name, kind)
	}
	return nil
}

func addInteger[T fields.Integer](b *layout.Builder, name string, nonZero bool) {
	if nonZero {
		layout.NonZero[T](b, name)
		return
	}
	layout.Int[T](b, name)
}
