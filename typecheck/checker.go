// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/visvasity/fieldgen/fields"
)

const fieldsPkgPath = "github.com/visvasity/fieldgen/fields"

type StructData struct {
	StructName string

	PkgPath string
	PkgName string

	Endian fields.Endian

	// Size is the size of the fixed-size prefix, which is also the offset of
	// the trailing region if there is one.
	Size int64

	Fields []*FieldData
}

// Tail returns the trailing region field or nil.
func (sd *StructData) Tail() *FieldData {
	if n := len(sd.Fields); n > 0 && sd.Fields[n-1].Kind == "tail" {
		return sd.Fields[n-1]
	}
	return nil
}

type FieldData struct {
	Index     int
	FieldName string

	Kind string // One of [int|float|bool|array|nonzero|tail]

	// BasicKind is the fixed-size basic type of int, float and nonzero
	// fields. One of [int8|uint8|int16|...|float32|float64].
	BasicKind string

	// TypeName is set when the value type (or the NonZero argument) is a
	// named type.
	TypeName    string
	TypePkgPath string
	TypePkgName string

	Offset int64
	Size   int64 // fields.Unbounded for the trailing region
}

type basicInfo struct {
	name string
	size int64
}

var basicKinds = map[types.BasicKind]basicInfo{
	types.Int8:    {"int8", 1},
	types.Int16:   {"int16", 2},
	types.Int32:   {"int32", 4},
	types.Int64:   {"int64", 8},
	types.Uint8:   {"uint8", 1},
	types.Uint16:  {"uint16", 2},
	types.Uint32:  {"uint32", 4},
	types.Uint64:  {"uint64", 8},
	types.Float32: {"float32", 4},
	types.Float64: {"float64", 8},
	types.Bool:    {"bool", 1},
}

// Checker validates struct declarations and computes their binary layouts.
type Checker struct {
	pkg    *packages.Package
	endian fields.Endian

	checkedTypes typeutil.Map // map[types.Type]*StructData
	failedTypes  typeutil.Map // map[types.Type]error
}

// New returns a checker for types declared in pkg. Layouts without an endian
// annotation use the given byte order.
func New(pkg *packages.Package, endian fields.Endian) *Checker {
	return &Checker{pkg: pkg, endian: endian}
}

// LoadPackage loads a single package with type information and syntax trees.
func LoadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one", pattern, len(pkgs))
	}
	if errs := pkgs[0].Errors; len(errs) != 0 {
		return nil, fmt.Errorf("loading package %q: %v", pattern, errs[0])
	}
	return pkgs[0], nil
}

// Lookup finds a type name declared at the package scope.
func (c *Checker) Lookup(typeName string) (*types.TypeName, error) {
	object := c.pkg.Types.Scope().Lookup(typeName)
	if object == nil {
		return nil, fmt.Errorf("typename %q doesn't exist", typeName)
	}
	tname, ok := object.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%q is not a typename", typeName)
	}
	return tname, nil
}

// Check validates the struct type and returns its layout. Results are cached
// per type, including failures.
func (c *Checker) Check(typename *types.TypeName) (*StructData, error) {
	t := typename.Type()
	if v := c.checkedTypes.At(t); v != nil {
		return v.(*StructData), nil
	}
	if v := c.failedTypes.At(t); v != nil {
		return nil, v.(error)
	}

	sdata, err := c.collectFields(typename)
	if err != nil {
		err = fmt.Errorf("type %s: %w", typename.Name(), err)
		c.failedTypes.Set(t, err)
		return nil, err
	}
	l, err := sdata.Layout()
	if err != nil {
		err = fmt.Errorf("type %s: %w", typename.Name(), err)
		c.failedTypes.Set(t, err)
		return nil, err
	}
	c.checkedTypes.Set(t, sdata)

	Logger().Debug("checked layout", zap.String("type", sdata.StructName), zap.Stringer("layout", l))
	return sdata, nil
}

func (c *Checker) collectFields(typename *types.TypeName) (*StructData, error) {
	stype, ok := typename.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("underlying type is not a struct")
	}
	if named, ok := typename.Type().(*types.Named); ok && named.TypeParams().Len() != 0 {
		return nil, fmt.Errorf("generic struct types are not supported")
	}

	anno, err := c.annotation(typename)
	if err != nil {
		return nil, err
	}

	sdata := &StructData{
		StructName: typename.Name(),
		PkgPath:    typename.Pkg().Path(),
		PkgName:    typename.Pkg().Name(),
		Endian:     c.endian,
	}
	if anno != nil && anno.HasEndian {
		sdata.Endian = anno.Endian
	}

	var next int64
	tailPlaced := false
	for i := 0; i < stype.NumFields(); i++ {
		v := stype.Field(i)
		if v.Anonymous() {
			return nil, fmt.Errorf("embedded field (%v) is not supported", v)
		}
		if sdata.Tail() != nil {
			return nil, fmt.Errorf("field %s follows the trailing region", v.Name())
		}

		tag, err := ParseTag(stype.Tag(i))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", v.Name(), err)
		}
		if tag.Offset >= 0 {
			if tag.Offset < next {
				return nil, fmt.Errorf("field %s at offset %d overlaps the previous field ending at %d", v.Name(), tag.Offset, next)
			}
			next = tag.Offset
		}
		next += tag.Skip

		fdata := &FieldData{Index: len(sdata.Fields), FieldName: v.Name(), Offset: next}
		if err := c.collectField(v, fdata); err != nil {
			return nil, err
		}

		// Blank fields reserve space without accessors.
		if v.Name() == "_" {
			if fdata.Kind != "array" {
				return nil, fmt.Errorf("blank field must be a byte array, found %v", v.Type())
			}
			next += fdata.Size
			continue
		}

		if fdata.Kind != "tail" {
			next += fdata.Size
		} else {
			tailPlaced = tag.Offset >= 0 || tag.Skip > 0
		}
		sdata.Fields = append(sdata.Fields, fdata)
	}

	if len(sdata.Fields) == 0 {
		return nil, fmt.Errorf("struct has no fields")
	}

	sdata.Size = next
	if anno != nil && anno.Size > 0 {
		if next > anno.Size {
			return nil, fmt.Errorf("fields need %d bytes but @layout size is %d", next, anno.Size)
		}
		sdata.Size = anno.Size
	}
	if tail := sdata.Tail(); tail != nil {
		if tailPlaced && tail.Offset != sdata.Size {
			return nil, fmt.Errorf("trailing region %s is placed at offset %d but the fixed fields end at %d", tail.FieldName, tail.Offset, sdata.Size)
		}
		tail.Offset = sdata.Size
	}
	return sdata, nil
}

func (c *Checker) collectField(field *types.Var, fdata *FieldData) error {
	ftype := field.Type()

	switch x := ftype.Underlying().(type) {
	case *types.Basic:
		info, ok := basicKinds[x.Kind()]
		if !ok {
			return fmt.Errorf("field (%v): type %v has no fixed size", field, ftype)
		}
		switch {
		case x.Kind() == types.Bool:
			fdata.Kind = "bool"
		case x.Info()&types.IsFloat != 0:
			fdata.Kind = "float"
			fdata.BasicKind = info.name
		default:
			fdata.Kind = "int"
			fdata.BasicKind = info.name
		}
		fdata.Size = info.size
		if fdata.Kind != "bool" {
			setTypeName(fdata, ftype)
		}
		return nil

	case *types.Array:
		if !isByteType(x.Elem()) {
			return fmt.Errorf("field (%v): only byte arrays are supported", field)
		}
		if x.Len() == 0 {
			return fmt.Errorf("field (%v): zero sized arrays are not supported", field)
		}
		fdata.Kind = "array"
		fdata.Size = x.Len()
		return nil

	case *types.Slice:
		if !isByteType(x.Elem()) {
			return fmt.Errorf("field (%v): only byte slices are supported", field)
		}
		fdata.Kind = "tail"
		fdata.Size = fields.Unbounded
		return nil

	case *types.Struct:
		arg, ok := nonZeroArg(ftype)
		if !ok {
			return fmt.Errorf("field (%v): struct fields are not supported", field)
		}
		b, ok := arg.Underlying().(*types.Basic)
		if !ok || b.Info()&types.IsInteger == 0 {
			return fmt.Errorf("field (%v): NonZero argument %v is not an integer", field, arg)
		}
		info, ok := basicKinds[b.Kind()]
		if !ok {
			return fmt.Errorf("field (%v): NonZero argument %v has no fixed size", field, arg)
		}
		fdata.Kind = "nonzero"
		fdata.BasicKind = info.name
		fdata.Size = info.size
		setTypeName(fdata, arg)
		return nil
	}

	return fmt.Errorf("field (%v) of type %v (underlying=%T) is not supported", field, ftype, ftype.Underlying())
}

// annotation returns the @layout annotation on the type's declaration, if
// any.
func (c *Checker) annotation(typename *types.TypeName) (*Annotation, error) {
	if typename.Pkg() != c.pkg.Types {
		return nil, nil
	}
	for _, file := range c.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				if ts.Name.Name != typename.Name() {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				return FindAnnotation(doc)
			}
		}
	}
	return nil, nil
}

func setTypeName(fdata *FieldData, t types.Type) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return
	}
	fdata.TypeName = named.Obj().Name()
	if pkg := named.Obj().Pkg(); pkg != nil {
		fdata.TypePkgPath = pkg.Path()
		fdata.TypePkgName = pkg.Name()
	}
}

func isByteType(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Uint8
}

// nonZeroArg returns T when t is fields.NonZero[T].
func nonZeroArg(t types.Type) (types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	tn := named.Obj()
	if tn.Pkg() == nil || tn.Pkg().Path() != fieldsPkgPath || tn.Name() != "NonZero" {
		return nil, false
	}
	if targs := named.TypeArgs(); targs != nil && targs.Len() == 1 {
		return targs.At(0), true
	}
	return nil, false
}
