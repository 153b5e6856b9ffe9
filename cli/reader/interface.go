package reader

import "github.com/pithecene-io/rangemap/almanac"

// Reader abstracts almanac loading for CLI commands.
// FileReader is the default; tests install in-memory readers.
type Reader interface {
	// Load reads the almanac at input in the given format.
	// FormatAuto resolves the format from the input name.
	Load(input string, format Format) (*almanac.Almanac, error)
}

// defaultReader is the package-level reader instance.
var defaultReader Reader = FileReader{}

// SetReader sets the package-level reader instance.
func SetReader(r Reader) {
	defaultReader = r
}

// GetReader returns the current package-level reader instance.
func GetReader() Reader {
	return defaultReader
}
