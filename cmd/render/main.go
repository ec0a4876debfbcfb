package main

// Render a résumé file to LaTeX without running the server:
//   go run ./cmd/render -in resume.yaml -out resume.tex

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-latex/resume/latex"
	"resume-latex/resume/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "-", "input résumé file (.json, .yaml, .yml) or - for stdin")
	outPath := fs.String("out", "-", "output .tex file or - for stdout")
	format := fs.String("format", "", "input format: json or yaml (default: from file extension, json for stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	raw, err := readInput(*inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	rec, err := decode(raw, resolveFormat(*format, *inPath))
	if err != nil {
		fmt.Fprintf(stderr, "decode input: %v\n", err)
		return 1
	}
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	if err := writeOutput(*outPath, stdout, latex.Synthesize(rec)); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(filepath.Clean(path))
}

func resolveFormat(flagValue, path string) string {
	if f := strings.ToLower(strings.TrimSpace(flagValue)); f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func decode(raw []byte, format string) (model.ResumeRecord, error) {
	var rec model.ResumeRecord
	switch format {
	case "json":
		if err := json.Unmarshal(raw, &rec); err != nil {
			return rec, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return rec, errors.New("empty document")
			}
			return rec, err
		}
	default:
		return rec, fmt.Errorf("unsupported format %q", format)
	}
	return rec, nil
}

func writeOutput(path string, stdout io.Writer, doc string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, doc)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
