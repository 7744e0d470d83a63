// Package export writes pun datasets to files.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// ErrUnknownFormat is returned for a format name with no writer.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

// AllFormats lists every supported format in write order.
var AllFormats = []Format{FormatCSV, FormatJSON, FormatText}

// Ext returns the file extension, with the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// ParseFormat maps a format name to a Format. "text" is accepted for txt.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ParseFormats parses a list of names, dropping repeats and keeping order.
func ParseFormats(names []string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats, nil
}

// Write renders records in format f.
func Write(w io.Writer, f Format, records []domain.PunRecord) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatText:
		return WriteText(w, records)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
