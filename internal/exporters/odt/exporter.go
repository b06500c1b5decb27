// Package odt prepares books for the office-document XML container,
// delegated to an external encoder.
package odt

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter prepares ODT exports.
type Exporter struct{}

// New creates a new ODT exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatODT
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export validates the book for the external encoder. No content is
// returned for this format.
func (e *Exporter) Export(_ context.Context, book *domain.Book, _ domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.Format())
	}

	return exporters.Render(e.Format(), func() (string, error) {
		logger.Debug("prepared ODT document %q with %d chapters", book.Title, len(book.Body()))
		return "", nil
	})
}
