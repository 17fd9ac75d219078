package renderer

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Format is an output format for command results.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// Formats lists the supported output formats.
func Formats() (list []Format) {
	list = []Format{FormatTable, FormatJSON, FormatMarkdown, FormatPDF}
	return list
}

// ParseFormat accepts a format name, case-insensitive. "md" is an alias for markdown.
func ParseFormat(s string) (f Format, err error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		name = string(FormatMarkdown)
	}
	for _, candidate := range Formats() {
		if string(candidate) == name {
			f = candidate
			return f, err
		}
	}
	err = errors.Errorf("unsupported output format %q (choose one of table, json, markdown, pdf)", s)
	return f, err
}

// JSON renders v as indented JSON with a trailing newline.
func JSON(v any) (data []byte, err error) {
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal JSON output")
		return data, err
	}
	data = append(data, '\n')
	return data, err
}
