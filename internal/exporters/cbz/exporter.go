// Package cbz prepares books for the comic archive format. Page
// rasterisation and archive packing belong to the external encoder;
// this exporter owns validation and page ordering.
package cbz

import (
	"context"
	"fmt"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter prepares comic archive exports.
type Exporter struct{}

// New creates a new CBZ exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatCBZ
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export validates the book and resolves the page plan for the
// external encoder. No content is returned for this format.
func (e *Exporter) Export(_ context.Context, book *domain.Book, _ domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.Format())
	}

	return exporters.Render(e.Format(), func() (string, error) {
		pages := pagePlan(book)
		logger.Debug("prepared CBZ archive %q with %d pages", book.Title, len(pages))
		return "", nil
	})
}

// pagePlan lists archive entries in reading order: optional cover
// first, then one page per chapter.
func pagePlan(book *domain.Book) []string {
	var pages []string
	if book.CoverImage != "" {
		pages = append(pages, "000-cover")
	}
	for i, ch := range book.Body() {
		pages = append(pages, fmt.Sprintf("%03d-%s", i+1, ch.Title))
	}
	return pages
}
