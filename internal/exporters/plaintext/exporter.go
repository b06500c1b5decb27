package plaintext

import (
	"context"
	"fmt"
	"strings"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter renders plain text documents.
type Exporter struct{}

// New creates a new plain text exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatTXT
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export renders the book as plain text: a title/author/genre header,
// an optional table of contents, then one delimited block per chapter.
func (e *Exporter) Export(_ context.Context, book *domain.Book, opts domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.Format())
	}

	return exporters.Render(e.Format(), func() (string, error) {
		return render(book, opts), nil
	})
}

func render(book *domain.Book, opts domain.ExportOptions) string {
	var b strings.Builder
	chapters := book.Body()

	b.WriteString(book.Title + "\n")
	if book.Author != "" {
		b.WriteString("by " + book.Author + "\n")
	}
	if book.Genre != "" {
		b.WriteString("Genre: " + book.Genre + "\n")
	}
	b.WriteString("\n")

	if book.Description != "" {
		b.WriteString(book.Description + "\n\n")
	}

	if opts.IncludeTableOfContents && len(chapters) > 0 {
		b.WriteString("Table of Contents\n")
		for i, ch := range chapters {
			fmt.Fprintf(&b, "%d. %s\n", i+1, ch.Title)
		}
		b.WriteString("\n")
	}

	for i, ch := range chapters {
		fmt.Fprintf(&b, "=== Chapter %d: %s ===\n\n", i+1, ch.Title)
		b.WriteString(strings.TrimRight(ch.Content, "\n"))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
