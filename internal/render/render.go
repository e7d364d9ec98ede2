// Package render writes catalog values to an output stream.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/flarebyte/getitem/internal/catalog"
)

// Format selects how a value is written.
type Format string

const (
	// FormatAuto prints scalars as plain text and containers as compact JSON.
	FormatAuto Format = "auto"
	// FormatJSON prints every value as compact JSON.
	FormatJSON Format = "json"
	// FormatYAML prints the value as a YAML document.
	FormatYAML Format = "yaml"
	// FormatCUE prints the value as formatted CUE.
	FormatCUE Format = "cue"
)

// Formats lists the accepted format names in help order.
var Formats = []Format{FormatAuto, FormatJSON, FormatYAML, FormatCUE}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q (expected auto, json, yaml or cue)", s)
}

// Write renders v to w using format f.
func Write(w io.Writer, v catalog.Value, f Format) error {
	switch f {
	case FormatAuto, "":
		return writeAuto(w, v)
	case FormatJSON:
		return writeLine(w, func(bw *bufio.Writer) error { return writeCompactJSON(bw, v) })
	case FormatYAML:
		return writeYAML(w, v)
	case FormatCUE:
		return writeCUE(w, v)
	}
	return fmt.Errorf("unsupported format %q", f)
}

func writeAuto(w io.Writer, v catalog.Value) error {
	if catalog.IsContainer(v) {
		return writeLine(w, func(bw *bufio.Writer) error { return writeCompactJSON(bw, v) })
	}
	return writeLine(w, func(bw *bufio.Writer) error {
		_, err := bw.WriteString(Text(v))
		return err
	})
}

// Text is the plain form of a scalar: strings unquoted and unescaped,
// numbers as written in the catalog.
func Text(v catalog.Value) string {
	switch x := v.(type) {
	case catalog.Null:
		return "null"
	case catalog.Bool:
		if x {
			return "true"
		}
		return "false"
	case catalog.Number:
		return string(x)
	case catalog.String:
		return string(x)
	}
	return ""
}

func writeLine(w io.Writer, body func(*bufio.Writer) error) error {
	bw := bufio.NewWriter(w)
	if err := body(bw); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
