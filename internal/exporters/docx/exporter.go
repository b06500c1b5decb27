// Package docx prepares books for the word-processor binary formats,
// both the OOXML container and the legacy binary variant. The
// container encoding is delegated to an external encoder.
package docx

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure both variants implement the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter prepares one word-processor variant.
type Exporter struct {
	format domain.Format
}

// New creates the DOCX exporter.
func New() *Exporter {
	return &Exporter{format: domain.FormatDOCX}
}

// NewLegacy creates the legacy DOC exporter.
func NewLegacy() *Exporter {
	return &Exporter{format: domain.FormatDOC}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return e.format
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export validates the book and resolves the section plan for the
// external encoder. No content is returned for this format family.
func (e *Exporter) Export(_ context.Context, book *domain.Book, opts domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.format)
	}

	return exporters.Render(e.format, func() (string, error) {
		chapters := book.Body()
		logger.Debug("prepared %s document %q: %d sections, font=%q",
			e.format.DisplayName(), book.Title, len(chapters), opts.FontFamily)
		return "", nil
	})
}
