package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// Texter is implemented by results that have a plain-text rendering.
type Texter interface {
	Text() string
}

// Print serializes v to w in the current output format.
func Print(w io.Writer, v interface{}) error {
	return PrintFormat(w, OutputFormat, v)
}

// PrintFormat serializes v to w in format.
func PrintFormat(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatText:
		return PrintText(w, v)
	case FormatJSON:
		return PrintJSON(w, v)
	case FormatYAML:
		return PrintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintText writes v's text rendering followed by a newline. Empty
// renderings print nothing.
func PrintText(w io.Writer, v interface{}) error {
	var s string
	switch t := v.(type) {
	case Texter:
		s = t.Text()
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// PrintJSON serializes v to w as compact single-line JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// PrintError writes "error: <err>" to w, with the prefix in red when w is a
// terminal. A non-empty hint is printed on the following line.
func PrintError(w io.Writer, err error, hint string) {
	out := termenv.NewOutput(w)
	prefix := out.String("error:").Foreground(out.Color("1")).Bold()
	fmt.Fprintf(w, "%s %v\n", prefix, err)
	if hint != "" {
		fmt.Fprintln(w, hint)
	}
}
