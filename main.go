// Copyright (c) 2025 Visvasity LLC

// Command fieldgen generates typed, zero-copy views over binary layouts
// declared as Go structs.
//
// For example, given this snippet,
//
//	package wire
//
//	type Kind uint8
//
//	// Frame is a network frame.
//	//
//	// @layout endian=big
//	type Frame struct {
//		Kind    Kind
//		Length  uint16
//		Seq     fields.NonZero[uint32]
//		Urgent  bool
//		_       [1]byte
//		Session [8]byte
//		Payload []byte
//	}
//
// running this command
//
//	fieldgen -inpkg ./wire -outdir ./frames Frame
//
// will create file frame.fieldgen.go, in ./frames directory containing the
// Frame views with the following interface:
//
//	const FrameSize = 17
//
//	type FrameView[S fields.ReadOnly] struct { ... }
//	type FrameMutView[S fields.Mutable] struct { FrameView[S] }
//
//	func NewFrameView[S fields.ReadOnly](storage S) FrameView[S]
//	func NewFrameMutView[S fields.Mutable](storage S) FrameMutView[S]
//	func OpenFrameView[S fields.ReadOnly](storage S) (FrameView[S], error)
//	func OpenFrameMutView[S fields.Mutable](storage S) (FrameMutView[S], error)
//
//	func (v FrameView[S]) Storage() S
//	func (v FrameView[S]) IsZero() bool
//	func (v FrameView[S]) String() string
//	func (v FrameMutView[S]) View() FrameView[S]
//	func (v FrameMutView[S]) SetZero()
//
//	func (v FrameView[S]) Kind() fields.View[S, wire.Kind]
//	func (v FrameView[S]) Length() fields.View[S, uint16]
//	func (v FrameView[S]) Seq() fields.TryView[S, fields.NonZero[uint32]]
//	func (v FrameView[S]) Urgent() fields.TryView[S, bool]
//	func (v FrameView[S]) Session() fields.View[S, []byte]
//	func (v FrameView[S]) Payload() []byte
//
//	func (v FrameMutView[S]) KindMut() fields.MutView[S, wire.Kind]
//	func (v FrameMutView[S]) LengthMut() fields.MutView[S, uint16]
//	func (v FrameMutView[S]) SeqMut() fields.InfallibleMutView[S, fields.NonZero[uint32]]
//	func (v FrameMutView[S]) UrgentMut() fields.InfallibleMutView[S, bool]
//	func (v FrameMutView[S]) SessionMut() fields.MutView[S, []byte]
//	func (v FrameMutView[S]) PayloadMut() []byte
//
// Settings can also come from a TOML file given with -config; flags that are
// set explicitly take precedence over the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/visvasity/fieldgen/internal/codegen"
	"github.com/visvasity/fieldgen/internal/config"
	"github.com/visvasity/fieldgen/internal/logging"
	"github.com/visvasity/fieldgen/typecheck"
)

var (
	configFile = flag.String("config", "", "path to a fieldgen.toml configuration file")
	inPkg      = flag.String("inpkg", "", "package path/name for the type definitions")
	outPkg     = flag.String("outpkg", "", "package name for the generated files")
	outDir     = flag.String("outdir", "", "output directory for the generated files")
	endian     = flag.String("endian", "", "default byte order for layouts without an endian annotation: little, big or native")
	describe   = flag.Bool("describe", false, "print the computed layouts instead of generating code")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of fieldgen:\n")
	fmt.Fprintf(os.Stderr, "\tfieldgen [-config fieldgen.toml] -inpkg '...' -outpkg '...' -outdir '...' [-endian little] [-describe] types... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldgen: %v\n", err)
		os.Exit(2)
	}
	if len(cfg.Generator.Types) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldgen: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	typecheck.SetLogger(logger.Named("typecheck"))
	codegen.SetLogger(logger.Named("codegen"))

	if *describe {
		if err := describeLayouts(cfg.Generator, os.Stdout); err != nil {
			logger.Error("describe failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	if err := run(cfg.Generator, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// loadConfig merges the optional configuration file with the command line.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return config.Config{}, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inpkg":
			cfg.Generator.InPkg = *inPkg
		case "outpkg":
			cfg.Generator.OutPkg = *outPkg
		case "outdir":
			cfg.Generator.OutDir = *outDir
		case "endian":
			cfg.Generator.Endian = *endian
		}
	})
	if flag.NArg() != 0 {
		cfg.Generator.Types = flag.Args()
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	if cfg.Generator.OutDir == "" {
		return config.Config{}, fmt.Errorf("output directory must be set with -outdir flag or generator.outdir")
	}
	if cfg.Generator.OutPkg == "" {
		abs, err := filepath.Abs(cfg.Generator.OutDir)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Generator.OutPkg = filepath.Base(abs)
	}
	return cfg, nil
}

func run(cfg config.GeneratorConfig, logger *zap.Logger) error {
	byteOrder, err := cfg.ByteOrder()
	if err != nil {
		return err
	}

	pkg, err := typecheck.LoadPackage(cfg.InPkg)
	if err != nil {
		return err
	}

	g := codegen.New(cfg.OutPkg, samePackagePath(pkg, cfg.OutDir))
	checker := typecheck.New(pkg, byteOrder)
	for _, t := range cfg.Types {
		tname, err := checker.Lookup(t)
		if err != nil {
			return err
		}
		sdata, err := checker.Check(tname)
		if err != nil {
			return err
		}
		if err := g.Generate(sdata); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	for _, typ := range g.GetTypes() {
		src, err := g.GetSource(typ)
		if err != nil {
			// Write the unformatted output anyway so that the user can compile
			// it to analyze the error.
			logger.Warn("writing unformatted output", zap.String("type", typ), zap.Error(err))
		}

		outputName := filepath.Join(cfg.OutDir, codegen.FileName(typ))
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		logger.Info("generated", zap.String("type", typ), zap.String("file", outputName))
	}
	return nil
}

// describeLayouts writes the layout table of every configured type to w.
func describeLayouts(cfg config.GeneratorConfig, w io.Writer) error {
	byteOrder, err := cfg.ByteOrder()
	if err != nil {
		return err
	}
	pkg, err := typecheck.LoadPackage(cfg.InPkg)
	if err != nil {
		return err
	}

	checker := typecheck.New(pkg, byteOrder)
	for _, t := range cfg.Types {
		tname, err := checker.Lookup(t)
		if err != nil {
			return err
		}
		sdata, err := checker.Check(tname)
		if err != nil {
			return err
		}
		l, err := sdata.Layout()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, l)
	}
	return nil
}

// samePackagePath returns the input package path when the output directory
// is the input package directory, so that generated code refers to input
// types without importing its own package.
func samePackagePath(pkg *packages.Package, outDir string) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}
	pkgDir := filepath.Dir(pkg.GoFiles[0])
	abs, err := filepath.Abs(outDir)
	if err != nil || abs != pkgDir {
		return ""
	}
	return pkg.PkgPath
}
