package markdown

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

// Exporter renders Markdown documents. Chapter content is already
// written in the inline dialect, so it passes through verbatim.
type Exporter struct{}

// New creates a new Markdown exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatMarkdown
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export renders the book as a Markdown document.
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

	b.WriteString("# " + book.Title + "\n\n")
	if book.Author != "" {
		b.WriteString("*by " + book.Author + "*\n\n")
	}
	if book.Genre != "" {
		b.WriteString("**Genre:** " + book.Genre + "\n\n")
	}
	if book.Description != "" {
		b.WriteString(book.Description + "\n\n")
	}

	if opts.IncludeTableOfContents && len(chapters) > 0 {
		b.WriteString("## Table of Contents\n\n")
		for i, ch := range chapters {
			fmt.Fprintf(&b, "%d. %s\n", i+1, ch.Title)
		}
		b.WriteString("\n")
	}

	for i, ch := range chapters {
		fmt.Fprintf(&b, "## Chapter %d: %s\n\n", i+1, ch.Title)
		b.WriteString(strings.TrimRight(ch.Content, "\n"))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
