package units

// DefaultFontSize is used when a typeface declaration omits its size.
const DefaultFontSize = 20

// Typeface names a font and the pixel size to render it at. An empty Name
// selects the context's default face.
type Typeface struct {
	Name string  `toml:"name,omitempty"`
	Size float64 `toml:"size"`
}
