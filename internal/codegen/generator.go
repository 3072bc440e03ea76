// Copyright (c) 2025 Visvasity LLC

// Package codegen emits view types for struct layouts computed by the
// typecheck package.
//
// For a layout type Packet, the generated file declares
//
//	const PacketSize = ...
//
//	type PacketView[S fields.ReadOnly] struct { ... }
//	type PacketMutView[S fields.Mutable] struct { PacketView[S] }
//
//	func NewPacketView[S fields.ReadOnly](storage S) PacketView[S]
//	func NewPacketMutView[S fields.Mutable](storage S) PacketMutView[S]
//	func OpenPacketView[S fields.ReadOnly](storage S) (PacketView[S], error)
//	func OpenPacketMutView[S fields.Mutable](storage S) (PacketMutView[S], error)
//
// with one read accessor per field on PacketView and one write accessor,
// suffixed with Mut, on PacketMutView.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/visvasity/fieldgen/fields"
	"github.com/visvasity/fieldgen/typecheck"
)

const fieldsPkgPath = "github.com/visvasity/fieldgen/fields"

// Suffix is the file name suffix of generated files.
const Suffix = ".fieldgen.go"

// reserved holds method and field names defined on every generated view.
var reserved = map[string]bool{
	"storage": true,
	"Storage": true,
	"View":    true,
	"IsZero":  true,
	"SetZero": true,
	"String":  true,
}

type Generator struct {
	pkgName string
	pkgPath string

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path to the set of type names
	// whose generated file imports the package. For example,
	//
	//   importsMap["github.com/visvasity/fieldgen/input"]["Packet"] = "input"
	//
	// entry indicates an import statement like,
	//
	//   import input "github.com/visvasity/fieldgen/input"
	//
	// in the generated file named "packet.fieldgen.go".
	importsMap map[string]map[string]string
}

// New returns a generator writing into package pkgName. Named types from
// pkgPath are referenced without a qualifier; pkgPath may be empty when the
// output package is not an input package.
func New(pkgName, pkgPath string) *Generator {
	return &Generator{
		pkgName:    pkgName,
		pkgPath:    pkgPath,
		bufferMap:  make(map[string]*bytes.Buffer),
		importsMap: make(map[string]map[string]string),
	}
}

// FileName returns the generated file name for a type.
func FileName(typeName string) string {
	return strings.ToLower(typeName) + Suffix
}

func (g *Generator) getBuffer(typeName string) *bytes.Buffer {
	if b, ok := g.bufferMap[typeName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[typeName] = b
	return b
}

func (g *Generator) addImport(typeName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[typeName]
	if !ok {
		vmap[typeName] = importName
		return nil
	}

	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by type %q", packagePath, typeName)
	}
	return nil
}

func (g *Generator) P(typeName string, v ...any) {
	buf := g.getBuffer(typeName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

// GetTypes returns the generated type names in sorted order.
func (g *Generator) GetTypes() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

// GetSource returns the formatted source for a generated type. When the
// output cannot be formatted the unformatted source is returned along with
// the error, so that the user can compile it to analyze the problem.
func (g *Generator) GetSource(typeName string) ([]byte, error) {
	buf := g.getSourceWithImports(typeName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		Logger().Warn("internal error: invalid Go generated", zap.String("type", typeName), zap.Error(err))
		return buf.Bytes(), err
	}
	return src, nil
}

func (g *Generator) getImports(typeName string) [][2]string {
	var imports [][2]string
	for _, pkgPath := range slices.Sorted(maps.Keys(g.importsMap)) {
		imp, ok := g.importsMap[pkgPath][typeName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	return imports
}

func (g *Generator) getSourceWithImports(typeName string) *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/fieldgen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(typeName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	io.Copy(buf, g.getBuffer(typeName))
	return buf
}

// Generate emits the view types for one checked layout.
func (g *Generator) Generate(sdata *typecheck.StructData) error {
	typeName := sdata.StructName
	if _, ok := g.bufferMap[typeName]; ok {
		return fmt.Errorf("type %q is already generated", typeName)
	}
	if err := checkNames(sdata); err != nil {
		return err
	}

	for _, imp := range []string{"fmt", "strings", fieldsPkgPath} {
		if err := g.addImport(typeName, "", imp); err != nil {
			return err
		}
	}

	if err := g.generateDescriptors(sdata); err != nil {
		return err
	}
	g.generateViewTypes(sdata)
	g.generateNewAndOpenMethods(sdata)
	g.generateCommonMethods(sdata)

	for i, fdata := range sdata.Fields {
		var err error
		switch fdata.Kind {
		case "int", "float", "array", "bool", "nonzero":
			err = g.generateAccessors(sdata, i)
		case "tail":
			g.generateTailMethods(sdata, i)
		default:
			err = fmt.Errorf("field %s.%s has unknown kind %q", typeName, fdata.FieldName, fdata.Kind)
		}
		if err != nil {
			return err
		}
	}

	g.generateStringMethod(sdata)

	Logger().Debug("generated layout views",
		zap.String("type", typeName),
		zap.Int64("size", sdata.Size),
		zap.Int("fields", len(sdata.Fields)))
	return nil
}

func checkNames(sdata *typecheck.StructData) error {
	names := make(map[string]bool)
	for _, fdata := range sdata.Fields {
		names[fdata.FieldName] = true
	}
	for _, fdata := range sdata.Fields {
		if reserved[fdata.FieldName] {
			return fmt.Errorf("field %s.%s conflicts with a generated method", sdata.StructName, fdata.FieldName)
		}
		if names[fdata.FieldName+"Mut"] {
			return fmt.Errorf("field %s.%sMut conflicts with the write accessor of %s", sdata.StructName, fdata.FieldName, fdata.FieldName)
		}
	}
	return nil
}

func viewName(typeName string) string {
	return typeName + "View"
}

func mutViewName(typeName string) string {
	return typeName + "MutView"
}

func sizeName(typeName string) string {
	return typeName + "Size"
}

func descriptorName(typeName, fieldName string) string {
	r := []rune(typeName)
	r[0] = unicode.ToLower(r[0])
	f := []rune(fieldName)
	f[0] = unicode.ToUpper(f[0])
	return string(r) + string(f)
}

func endianName(e fields.Endian) string {
	switch e {
	case fields.BigEndian:
		return "fields.BigEndian"
	case fields.NativeEndian:
		return "fields.NativeEndian"
	}
	return "fields.LittleEndian"
}

// valueType returns the Go type of an int, float or nonzero field's value,
// adding an import for named types from other packages.
func (g *Generator) valueType(typeName string, fdata *typecheck.FieldData) (string, error) {
	if fdata.TypeName == "" {
		return fdata.BasicKind, nil
	}
	if fdata.TypePkgPath == "" || fdata.TypePkgPath == g.pkgPath {
		return fdata.TypeName, nil
	}
	if err := g.addImport(typeName, "", fdata.TypePkgPath); err != nil {
		return "", err
	}
	return fdata.TypePkgName + "." + fdata.TypeName, nil
}

// accessorTypes returns the value type, the constructor expression and the
// view type names for a field.
func (g *Generator) accessorTypes(sdata *typecheck.StructData, fdata *typecheck.FieldData) (vtype, ctor, rview, wview string, err error) {
	typeName, endian := sdata.StructName, endianName(sdata.Endian)
	switch fdata.Kind {
	case "int":
		if vtype, err = g.valueType(typeName, fdata); err != nil {
			return
		}
		ctor = fmt.Sprintf("fields.NewInt[%s](%q, %d, %s)", vtype, fdata.FieldName, fdata.Offset, endian)
		rview, wview = "View", "MutView"
	case "float":
		if vtype, err = g.valueType(typeName, fdata); err != nil {
			return
		}
		ctor = fmt.Sprintf("fields.NewFloat[%s](%q, %d, %s)", vtype, fdata.FieldName, fdata.Offset, endian)
		rview, wview = "View", "MutView"
	case "array":
		vtype = "[]byte"
		ctor = fmt.Sprintf("fields.NewArray(%q, %d, %d, %s)", fdata.FieldName, fdata.Offset, fdata.Size, endian)
		rview, wview = "View", "MutView"
	case "bool":
		vtype = "bool"
		ctor = fmt.Sprintf("fields.NewBool(%q, %d, %s)", fdata.FieldName, fdata.Offset, endian)
		rview, wview = "TryView", "InfallibleMutView"
	case "nonzero":
		var arg string
		if arg, err = g.valueType(typeName, fdata); err != nil {
			return
		}
		vtype = "fields.NonZero[" + arg + "]"
		ctor = fmt.Sprintf("fields.NewNonZero[%s](%q, %d, %s)", arg, fdata.FieldName, fdata.Offset, endian)
		rview, wview = "TryView", "InfallibleMutView"
	case "tail":
		vtype = "[]byte"
		ctor = fmt.Sprintf("fields.NewTail(%q, %d, %s)", fdata.FieldName, fdata.Offset, endian)
	default:
		err = fmt.Errorf("field %s.%s has unknown kind %q", typeName, fdata.FieldName, fdata.Kind)
	}
	return
}
