package services

import (
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters/cbz"
	"github.com/bindery-labs/bindery-cli/internal/exporters/docx"
	"github.com/bindery-labs/bindery-cli/internal/exporters/epub"
	"github.com/bindery-labs/bindery-cli/internal/exporters/fb2"
	"github.com/bindery-labs/bindery-cli/internal/exporters/html"
	"github.com/bindery-labs/bindery-cli/internal/exporters/latex"
	"github.com/bindery-labs/bindery-cli/internal/exporters/markdown"
	"github.com/bindery-labs/bindery-cli/internal/exporters/mobi"
	"github.com/bindery-labs/bindery-cli/internal/exporters/odt"
	"github.com/bindery-labs/bindery-cli/internal/exporters/pdf"
	"github.com/bindery-labs/bindery-cli/internal/exporters/plaintext"
	"github.com/bindery-labs/bindery-cli/internal/exporters/rtf"
	"github.com/bindery-labs/bindery-cli/internal/exporters/structured"
)

// Ensure ExporterRegistry implements the interface.
var _ driven.ExporterRegistry = (*ExporterRegistry)(nil)

// ExporterRegistry is the explicit mapping from format identifiers to
// exporter instances, built once at startup.
type ExporterRegistry struct {
	exporters map[domain.Format]driven.Exporter
}

// NewExporterRegistry creates a registry with all built-in exporters.
func NewExporterRegistry() *ExporterRegistry {
	r := &ExporterRegistry{
		exporters: make(map[domain.Format]driven.Exporter),
	}
	r.registerBuiltinExporters()
	return r
}

// NewEmptyExporterRegistry creates a registry with no exporters.
// Useful for tests that register a controlled set.
func NewEmptyExporterRegistry() *ExporterRegistry {
	return &ExporterRegistry{
		exporters: make(map[domain.Format]driven.Exporter),
	}
}

func (r *ExporterRegistry) registerBuiltinExporters() {
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(structured.NewJSON())
	r.Register(structured.NewYAML())
	r.Register(fb2.New())
	r.Register(latex.New())
	r.Register(pdf.New())
	r.Register(epub.New())
	r.Register(epub.NewV3())
	r.Register(mobi.New())
	r.Register(docx.New())
	r.Register(docx.NewLegacy())
	r.Register(rtf.New())
	r.Register(odt.New())
	r.Register(cbz.New())
}

// Register adds an exporter. A later registration for the same format
// replaces the earlier one.
func (r *ExporterRegistry) Register(exporter driven.Exporter) {
	r.exporters[exporter.Format()] = exporter
}

// Resolve returns the exporter for a format.
func (r *ExporterRegistry) Resolve(format domain.Format) (driven.Exporter, bool) {
	exporter, ok := r.exporters[format]
	return exporter, ok
}

// Formats returns the registered formats in display order.
func (r *ExporterRegistry) Formats() []domain.Format {
	formats := make([]domain.Format, 0, len(r.exporters))
	for _, f := range domain.AllFormats() {
		if _, ok := r.exporters[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}
