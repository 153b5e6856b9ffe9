package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pithecene-io/rangemap/almanac"
	"github.com/pithecene-io/rangemap/codec"
	"github.com/pithecene-io/rangemap/iox"
)

// Format is an almanac encoding.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	// FormatText is the line-oriented almanac text.
	FormatText Format = "text"
	// FormatYAML is a YAML almanac document.
	FormatYAML Format = "yaml"
	// FormatMsgpack is the framed msgpack encoding.
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format string. Empty and "auto" select FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "rmp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("invalid input format: %q (must be text, yaml, or msgpack)", s)
	}
}

// DetectFormat maps a file name to a format by extension.
// Unknown extensions and stdin are read as text.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".rmp", ".msgpack":
		return FormatMsgpack
	default:
		return FormatText
	}
}

// Resolve returns format, or the format detected from name when format is
// FormatAuto.
func Resolve(name string, format Format) Format {
	if format == FormatAuto {
		return DetectFormat(name)
	}
	return format
}

// Decode reads an almanac from r in the given format.
func Decode(r io.Reader, format Format) (*almanac.Almanac, error) {
	switch format {
	case FormatText, FormatAuto:
		return almanac.Parse(r)
	case FormatYAML:
		return almanac.DecodeYAML(r)
	case FormatMsgpack:
		return codec.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported input format: %q", format)
	}
}

// Encode writes a to w in the given format.
func Encode(w io.Writer, a *almanac.Almanac, format Format) error {
	switch format {
	case FormatText, FormatAuto:
		return almanac.WriteText(w, a)
	case FormatYAML:
		return almanac.EncodeYAML(w, a)
	case FormatMsgpack:
		return codec.Encode(w, a)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// FileReader loads almanacs from the filesystem or stdin ("-").
type FileReader struct{}

// Load implements Reader.
func (FileReader) Load(input string, format Format) (*almanac.Almanac, error) {
	rc, err := iox.OpenInput(input)
	if err != nil {
		return nil, fmt.Errorf("open almanac: %w", err)
	}
	defer iox.DiscardClose(rc)

	a, err := Decode(rc, Resolve(input, format))
	if err != nil {
		return nil, fmt.Errorf("read almanac %s: %w", input, err)
	}
	return a, nil
}
