package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"swift-workbench/models"
)

type YAMLWriter struct {
	indent int
	now    func() time.Time
}

func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{
		indent: 2,
		now:    time.Now,
	}
}

type parseReport struct {
	Source string             `yaml:"source,omitempty"`
	Result models.ParseResult `yaml:"result"`
}

// WriteParseResult encodes result as a YAML document with a generation
// header comment.
func (w *YAMLWriter) WriteParseResult(out io.Writer, source string, result models.ParseResult) error {
	if _, err := fmt.Fprintf(out, "# SWIFT Message Parse Results\n# Generated: %s\n\n", w.now().Format(time.RFC3339)); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(w.indent)
	if err := encoder.Encode(parseReport{Source: source, Result: result}); err != nil {
		return fmt.Errorf("encoding parse result: %w", err)
	}
	return encoder.Close()
}

func (w *YAMLWriter) WriteParseResultFile(filename, source string, result models.ParseResult) error {
	if err := EnsureDirectory(filepath.Dir(filename)); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", filename, err)
	}

	if err := w.WriteParseResult(file, source, result); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
