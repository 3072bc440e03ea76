// Copyright (c) 2025 Visvasity LLC

package codegen

import (
	"github.com/visvasity/fieldgen/typecheck"
)

func (g *Generator) generateDescriptors(sdata *typecheck.StructData) error {
	typeName := sdata.StructName

	g.P(typeName, "// ", sizeName(typeName), " is the size in bytes of the fixed-size part of ", typeName, ".")
	g.P(typeName, "const ", sizeName(typeName), " = ", sdata.Size)
	g.P(typeName)

	g.P(typeName, "// ", typeName, " field descriptors.")
	g.P(typeName, "var (")
	for _, fdata := range sdata.Fields {
		_, ctor, _, _, err := g.accessorTypes(sdata, fdata)
		if err != nil {
			return err
		}
		g.P(typeName, descriptorName(typeName, fdata.FieldName), " = ", ctor)
	}
	g.P(typeName, ")")
	g.P(typeName)
	return nil
}

func (g *Generator) generateViewTypes(sdata *typecheck.StructData) {
	typeName := sdata.StructName
	viewTypeName := viewName(typeName)
	mutViewTypeName := mutViewName(typeName)

	g.P(typeName, "// ", viewTypeName, " provides read-only access to the fields of a ", typeName, " stored in S.")
	g.P(typeName, "type ", viewTypeName, "[S fields.ReadOnly] struct {")
	g.P(typeName, "  storage S")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// ", mutViewTypeName, " extends ", viewTypeName, " with write access.")
	g.P(typeName, "type ", mutViewTypeName, "[S fields.Mutable] struct {")
	g.P(typeName, "  ", viewTypeName, "[S]")
	g.P(typeName, "}")
	g.P(typeName)
}

func (g *Generator) generateNewAndOpenMethods(sdata *typecheck.StructData) {
	typeName := sdata.StructName
	viewTypeName := viewName(typeName)
	mutViewTypeName := mutViewName(typeName)
	size := sizeName(typeName)

	g.P(typeName, "// New", viewTypeName, " returns a read-only ", typeName, " view over storage.")
	g.P(typeName, "func New", viewTypeName, "[S fields.ReadOnly](storage S) ", viewTypeName, "[S] {")
	g.P(typeName, "  return ", viewTypeName, "[S]{storage: storage}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// New", mutViewTypeName, " returns a read-write ", typeName, " view over storage.")
	g.P(typeName, "func New", mutViewTypeName, "[S fields.Mutable](storage S) ", mutViewTypeName, "[S] {")
	g.P(typeName, "  return ", mutViewTypeName, "[S]{", viewTypeName, "[S]{storage: storage}}")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// Open", viewTypeName, " is like New", viewTypeName, ", but fails when storage is")
	g.P(typeName, "// smaller than ", size, ".")
	g.P(typeName, "func Open", viewTypeName, "[S fields.ReadOnly](storage S) (", viewTypeName, "[S], error) {")
	g.P(typeName, "  if n := len(storage.Bytes()); n < ", size, " {")
	g.P(typeName, "    return ", viewTypeName, `[S]{}, fmt.Errorf("`, typeName, ` needs at least %d bytes, found %d", `, size, ", n)")
	g.P(typeName, "  }")
	g.P(typeName, "  return New", viewTypeName, "(storage), nil")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// Open", mutViewTypeName, " is like New", mutViewTypeName, ", but fails when storage")
	g.P(typeName, "// is smaller than ", size, ".")
	g.P(typeName, "func Open", mutViewTypeName, "[S fields.Mutable](storage S) (", mutViewTypeName, "[S], error) {")
	g.P(typeName, "  if n := len(storage.Bytes()); n < ", size, " {")
	g.P(typeName, "    return ", mutViewTypeName, `[S]{}, fmt.Errorf("`, typeName, ` needs at least %d bytes, found %d", `, size, ", n)")
	g.P(typeName, "  }")
	g.P(typeName, "  return New", mutViewTypeName, "(storage), nil")
	g.P(typeName, "}")
	g.P(typeName)
}

func (g *Generator) generateCommonMethods(sdata *typecheck.StructData) {
	typeName := sdata.StructName
	viewTypeName := viewName(typeName)
	mutViewTypeName := mutViewName(typeName)
	size := sizeName(typeName)

	g.P(typeName, "// Storage returns the underlying storage.")
	g.P(typeName, "func (v ", viewTypeName, "[S]) Storage() S {")
	g.P(typeName, "  return v.storage")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// View returns the read-only view of the same storage.")
	g.P(typeName, "func (v ", mutViewTypeName, "[S]) View() ", viewTypeName, "[S] {")
	g.P(typeName, "  return v.", viewTypeName)
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// IsZero returns true if the fixed-size part is all zeros.")
	g.P(typeName, "func (v ", viewTypeName, "[S]) IsZero() bool {")
	g.P(typeName, "  return fields.IsZero(v.storage.Bytes()[:", size, "])")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// SetZero zeroes the fixed-size part. The trailing region, if any, is")
	g.P(typeName, "// left unchanged.")
	g.P(typeName, "func (v ", mutViewTypeName, "[S]) SetZero() {")
	g.P(typeName, "  fields.SetZero(v.storage.MutBytes()[:", size, "])")
	g.P(typeName, "}")
	g.P(typeName)
}

// generateAccessors emits the read accessor on the view and the write
// accessor on the mutable view. Restricted-domain fields get TryView and
// InfallibleMutView handles.
func (g *Generator) generateAccessors(sdata *typecheck.StructData, findex int) error {
	typeName, fdata := sdata.StructName, sdata.Fields[findex]
	viewTypeName := viewName(typeName)
	mutViewTypeName := mutViewName(typeName)
	desc := descriptorName(typeName, fdata.FieldName)

	vtype, _, rview, wview, err := g.accessorTypes(sdata, fdata)
	if err != nil {
		return err
	}

	g.P(typeName, "func (v ", viewTypeName, "[S]) ", fdata.FieldName, "() fields.", rview, "[S, ", vtype, "] {")
	g.P(typeName, "  return fields.New", rview, "[S, ", vtype, "](v.storage, ", desc, ")")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "func (v ", mutViewTypeName, "[S]) ", fdata.FieldName, "Mut() fields.", wview, "[S, ", vtype, "] {")
	g.P(typeName, "  return fields.New", wview, "[S, ", vtype, "](v.storage, ", desc, ")")
	g.P(typeName, "}")
	g.P(typeName)
	return nil
}

func (g *Generator) generateTailMethods(sdata *typecheck.StructData, findex int) {
	typeName, fdata := sdata.StructName, sdata.Fields[findex]
	viewTypeName := viewName(typeName)
	mutViewTypeName := mutViewName(typeName)
	desc := descriptorName(typeName, fdata.FieldName)

	g.P(typeName, "// ", fdata.FieldName, " returns the trailing region without copying.")
	g.P(typeName, "func (v ", viewTypeName, "[S]) ", fdata.FieldName, "() []byte {")
	g.P(typeName, "  return ", desc, ".Slice(v.storage.Bytes())")
	g.P(typeName, "}")
	g.P(typeName)

	g.P(typeName, "// ", fdata.FieldName, "Mut returns the trailing region for in-place writes.")
	g.P(typeName, "func (v ", mutViewTypeName, "[S]) ", fdata.FieldName, "Mut() []byte {")
	g.P(typeName, "  return ", desc, ".Slice(v.storage.MutBytes())")
	g.P(typeName, "}")
	g.P(typeName)
}

func (g *Generator) generateStringMethod(sdata *typecheck.StructData) {
	typeName := sdata.StructName
	viewTypeName := viewName(typeName)
	size := sizeName(typeName)

	g.P(typeName, "func (v ", viewTypeName, "[S]) String() string {")
	g.P(typeName, "  if n := len(v.storage.Bytes()); n < ", size, " {")
	g.P(typeName, `    return fmt.Sprintf("`, typeName, `{<%d of %d bytes>}", n, `, size, ")")
	g.P(typeName, "  }")
	g.P(typeName, "  var sb strings.Builder")
	g.P(typeName, `  sb.WriteString("`, typeName, `{")`)
	for i, fdata := range sdata.Fields {
		sep := ", "
		if i == 0 {
			sep = ""
		}
		name := fdata.FieldName
		switch fdata.Kind {
		case "int", "float":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, name, `: %v", v.`, name, "().Read())")
		case "array":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, name, `: %x", v.`, name, "().Read())")
		case "bool", "nonzero":
			g.P(typeName, "  if x, err := v.", name, "().TryRead(); err != nil {")
			g.P(typeName, `    fmt.Fprintf(&sb, "`, sep, name, `: <%v>", err)`)
			g.P(typeName, "  } else {")
			g.P(typeName, `    fmt.Fprintf(&sb, "`, sep, name, `: %v", x)`)
			g.P(typeName, "  }")
		case "tail":
			g.P(typeName, `  fmt.Fprintf(&sb, "`, sep, name, `: %d bytes", len(v.`, name, "()))")
		}
	}
	g.P(typeName, `  sb.WriteString("}")`)
	g.P(typeName, "  return sb.String()")
	g.P(typeName, "}")
}
