package tree

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ardnew/json2kdl/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrDecode        = pkg.NewError("malformed input")
	ErrUnknownFormat = pkg.NewError("unknown input format")
)

// Format selects the notation of the input text.
type Format int

const (
	FormatAuto Format = iota // auto
	FormatJSON               // json
	FormatYAML               // yaml
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, ErrUnknownFormat.With(slog.String("format", s))
	}
}

// FormatOf resolves [FormatAuto] from a file path: ".yaml" and ".yml" are
// YAML, everything else (including stdin) is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads the whole of r as a single document in the given format.
// [FormatAuto] is treated as JSON.
func Decode(r io.Reader, format Format) (Value, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatAuto, FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, ErrUnknownFormat.With(slog.String("format", format.String()))
	}
}
