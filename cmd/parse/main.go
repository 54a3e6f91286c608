// Command parse converts collision damage estimate documents into the
// vendor-neutral JSON, CSV or XLSX form, printing unknown-tag diagnostics
// for operator review.
// Usage: go run ./cmd/parse [-format markup|flat] [-output json|csv|xlsx] file...
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Farhaan96/CollisionOS-sub009/internal/config"
	"github.com/Farhaan96/CollisionOS-sub009/internal/csvexport"
	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/estimate"
	"github.com/Farhaan96/CollisionOS-sub009/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	formatFlag := flag.String("format", "", "force document format: markup or flat (default: sniff)")
	outputFlag := flag.String("output", cfg.Export.Format, "output form: json, csv or xlsx")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("usage: parse [-format markup|flat] [-output json|csv|xlsx] file...")
	}

	for _, path := range flag.Args() {
		if err := parseFile(path, *formatFlag, *outputFlag, cfg.Export.Dir); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func parseFile(path, format, output, dir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	docFormat := domain.DocumentFormat(format)
	if format == "" {
		docFormat = estimate.DetectFormat(raw)
	}

	parser := estimate.NewParser(docFormat)
	res, err := parser.Parse(raw)
	if err != nil {
		return err
	}

	for _, tag := range res.Meta.UnknownTags {
		log.Printf("parse: %s: unknown element: %s", path, tag)
	}

	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		return writeCSV(res, exportPath(path, dir, "csv"))
	case "xlsx":
		return writeXLSX(res, exportPath(path, dir, "xlsx"))
	default:
		return fmt.Errorf("unknown output form %q", output)
	}
}

func writeCSV(res *domain.ParseResult, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := out.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteResult(res); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("parse: wrote %s", outPath)
	return nil
}

func writeXLSX(res *domain.ParseResult, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if err := xlsxexport.Write(out, res); err != nil {
		return err
	}
	log.Printf("parse: wrote %s", outPath)
	return nil
}

func exportPath(inPath, dir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(dir, base+"."+ext)
}
