package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/convert"
	"github.com/skemora/skemora/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "skemora CLI\n\nUsage:\n  skemora check -schema schema.json [-input payload.json] [-unknown strict|strip|passthrough]\n  skemora export -schema schema.json [-o out.json]\n\nNotes:\n  - Schema files ending in .yaml/.yml are decoded as YAML, everything else as JSON.")
}

// checkCmd compiles a schema file and optionally validates a JSON payload
// against it.
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath, inputPath, unknown, lang string
	fs.StringVar(&schemaPath, "schema", "", "path to the JSON Schema document")
	fs.StringVar(&inputPath, "input", "", "optional JSON payload to validate")
	fs.StringVar(&unknown, "unknown", "strict", "unknown-key policy: strict|strip|passthrough")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	s, _ := mustCompile(schemaPath, unknownPolicy(unknown))
	log.Info("schema compiled", "schema", schemaPath)
	if inputPath == "" {
		return
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatal("read input", "err", err)
	}
	if err := skemora.ValidateJSON(context.Background(), s, data); err != nil {
		if iss, ok := skemora.AsIssues(err); ok {
			for _, it := range iss {
				log.Error("issue", "path", it.Path, "code", it.Code, "message", it.Message)
			}
			os.Exit(1)
		}
		log.Fatal("validate", "err", err)
	}
	log.Info("payload valid", "input", inputPath)
}

// exportCmd compiles a schema file and prints its normalized JSON Schema
// export, a cheap way to canonicalize hand-written schemas.
func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var schemaPath, out string
	fs.StringVar(&schemaPath, "schema", "", "path to the JSON Schema document")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	s, _ := mustCompile(schemaPath, skemora.UnknownStrict)
	doc, err := s.JSONSchema()
	if err != nil {
		log.Fatal("export", "err", err)
	}
	b, err := marshalIndent(doc)
	if err != nil {
		log.Fatal("encode", "err", err)
	}
	if out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(out, append(b, '\n'), 0o644); err != nil {
		log.Fatal("write output", "err", err)
	}
}

func mustCompile(schemaPath string, unknown skemora.UnknownPolicy) (skemora.Schema, convert.Diag) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal("read schema", "err", err)
	}
	opts := convert.Options{Unknown: unknown}
	var (
		s    skemora.Schema
		diag convert.Diag
	)
	switch strings.ToLower(filepath.Ext(schemaPath)) {
	case ".yaml", ".yml":
		s, diag, err = convert.YAML(data, opts)
	default:
		s, diag, err = convert.JSON(data, opts)
	}
	if err != nil {
		log.Fatal("compile schema", "schema", schemaPath, "err", err)
	}
	for _, w := range diag.Warnings() {
		log.Warn(w)
	}
	return s, diag
}

func marshalIndent(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

func unknownPolicy(name string) skemora.UnknownPolicy {
	switch name {
	case "strip":
		return skemora.UnknownStrip
	case "passthrough":
		return skemora.UnknownPassthrough
	default:
		return skemora.UnknownStrict
	}
}
