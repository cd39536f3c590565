package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acamera-isp/ispreg-go/pkg/regdef"
	"golang.org/x/tools/imports"
)

func main() {
	regmapDir := flag.String("regmap", "", "Directory holding block YAMLs (docs/regmap/)")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkg := flag.String("package", "isp", "Package name of the generated files")
	flag.Parse()

	if *regmapDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: isp-reggen -regmap <dir> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*regmapDir, *outputDir, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(regmapDir, outputDir, pkg string) error {
	defs, err := regdef.LoadDir(regmapDir)
	if err != nil {
		return fmt.Errorf("loading register map: %w", err)
	}
	if err := regdef.ValidateMap(defs); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, def := range defs {
		code, err := GenerateBlock(def, pkg, def.Name+".yaml")
		if err != nil {
			return fmt.Errorf("generating block %s: %w", def.Name, err)
		}
		outPath := filepath.Join(outputDir, regdef.FileName(def.Name))
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(outPath), err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}

	code := GenerateIndex(defs, pkg)
	outPath := filepath.Join(outputDir, "blocks_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing blocks_gen.go: %w", err)
	}
	fmt.Printf("  generated %s\n", outPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
