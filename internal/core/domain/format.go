package domain

import "strings"

// Format identifies an export target. The set of formats is closed;
// the registry dispatches on these values.
type Format string

// Supported export formats.
const (
	FormatTXT      Format = "txt"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatFB2      Format = "fb2"
	FormatLaTeX    Format = "latex"
	FormatPDF      Format = "pdf"
	FormatEPUB     Format = "epub"
	FormatEPUB3    Format = "epub3"
	FormatMOBI     Format = "mobi"
	FormatDOCX     Format = "docx"
	FormatDOC      Format = "doc"
	FormatRTF      Format = "rtf"
	FormatODT      Format = "odt"
	FormatCBZ      Format = "cbz"
)

// AllFormats lists every supported format in a stable display order.
func AllFormats() []Format {
	return []Format{
		FormatTXT,
		FormatMarkdown,
		FormatHTML,
		FormatJSON,
		FormatYAML,
		FormatFB2,
		FormatLaTeX,
		FormatPDF,
		FormatEPUB,
		FormatEPUB3,
		FormatMOBI,
		FormatDOCX,
		FormatDOC,
		FormatRTF,
		FormatODT,
		FormatCBZ,
	}
}

// displayNames maps formats to the names used in result messages.
var displayNames = map[Format]string{
	FormatTXT:      "TXT",
	FormatMarkdown: "Markdown",
	FormatHTML:     "HTML",
	FormatJSON:     "JSON",
	FormatYAML:     "YAML",
	FormatFB2:      "FB2",
	FormatLaTeX:    "LaTeX",
	FormatPDF:      "PDF",
	FormatEPUB:     "EPUB",
	FormatEPUB3:    "EPUB3",
	FormatMOBI:     "MOBI",
	FormatDOCX:     "DOCX",
	FormatDOC:      "DOC",
	FormatRTF:      "RTF",
	FormatODT:      "ODT",
	FormatCBZ:      "CBZ",
}

// textBearing marks the formats whose result carries rendered content.
// The remaining formats delegate binary encoding to an external encoder
// and report success/failure only.
var textBearing = map[Format]bool{
	FormatTXT:      true,
	FormatMarkdown: true,
	FormatHTML:     true,
	FormatJSON:     true,
	FormatYAML:     true,
	FormatFB2:      true,
	FormatLaTeX:    true,
}

// DisplayName returns the name used in user-facing result messages.
func (f Format) DisplayName() string {
	if name, ok := displayNames[f]; ok {
		return name
	}
	return strings.ToUpper(string(f))
}

// TextBearing reports whether exports of this format carry the rendered
// document in ExportResult.Content.
func (f Format) TextBearing() bool {
	return textBearing[f]
}

// Extension returns the conventional file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatLaTeX:
		return "tex"
	case FormatEPUB3:
		return "epub"
	default:
		return string(f)
	}
}

// ParseFormat resolves a user-supplied identifier to a Format.
// Matching is case-insensitive and accepts the common aliases
// "text" and "md".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text", "plaintext":
		return FormatTXT, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "fb2":
		return FormatFB2, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	case "pdf":
		return FormatPDF, nil
	case "epub":
		return FormatEPUB, nil
	case "epub3":
		return FormatEPUB3, nil
	case "mobi":
		return FormatMOBI, nil
	case "docx":
		return FormatDOCX, nil
	case "doc":
		return FormatDOC, nil
	case "rtf":
		return FormatRTF, nil
	case "odt":
		return FormatODT, nil
	case "cbz":
		return FormatCBZ, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
