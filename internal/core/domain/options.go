package domain

// ExportOptions carries per-call rendering configuration. The base
// fields apply to any format that styles its output; the embedded
// family structs are consulted only by their own format family and
// ignored everywhere else, so a single options value can be passed
// through the dispatcher unmodified.
type ExportOptions struct {
	// Base styling options, shared by all format families.
	FontFamily  string  `json:"fontFamily,omitempty" toml:"font_family,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty" toml:"font_size,omitempty"`
	ColorScheme string  `json:"colorScheme,omitempty" toml:"color_scheme,omitempty"`

	// IncludeTableOfContents asks structural exporters to generate a
	// table of contents from the chapter list.
	IncludeTableOfContents bool `json:"includeTableOfContents,omitempty" toml:"include_table_of_contents,omitempty"`

	FB2   FB2Options   `json:"fb2,omitempty" toml:"fb2,omitempty"`
	LaTeX LaTeXOptions `json:"latex,omitempty" toml:"latex,omitempty"`
}

// FB2Options configures the structured book-markup XML family.
type FB2Options struct {
	// IncludeAnnotation emits the book description as an annotation
	// element when set.
	IncludeAnnotation bool `json:"includeAnnotation,omitempty" toml:"include_annotation,omitempty"`

	// Metadata overrides the book's own metadata in the document
	// header. Empty fields fall back to the book value.
	Metadata FB2Metadata `json:"metadata,omitempty" toml:"metadata,omitempty"`
}

// FB2Metadata is the structured metadata block of an FB2 document.
type FB2Metadata struct {
	Genre    string `json:"genre,omitempty" toml:"genre,omitempty"`
	Author   string `json:"author,omitempty" toml:"author,omitempty"`
	Language string `json:"language,omitempty" toml:"language,omitempty"`
}

// LaTeXOptions configures the typesetting-markup text family.
// Zero values select the defaults noted on each field.
type LaTeXOptions struct {
	// DocumentClass selects the document class. Default "book".
	DocumentClass string `json:"documentClass,omitempty" toml:"document_class,omitempty"`

	// PaperSize selects the class paper option. Default "a4paper".
	PaperSize string `json:"paperSize,omitempty" toml:"paper_size,omitempty"`

	// FontPackage names the font package to load. "default" or empty
	// selects lmodern.
	FontPackage string `json:"fontPackage,omitempty" toml:"font_package,omitempty"`

	// MathSupport pulls in the AMS math packages.
	MathSupport bool `json:"mathSupport,omitempty" toml:"math_support,omitempty"`

	// TwoSided selects a two-sided layout.
	TwoSided bool `json:"twoSided,omitempty" toml:"two_sided,omitempty"`
}
