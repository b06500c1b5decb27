// Package latex renders LaTeX documents, the typesetting-markup text
// format. The preamble is driven entirely by options; chapter content
// is translated from the inline dialect with full literal escaping of
// the LaTeX control characters.
package latex

import (
	"context"
	"fmt"
	"strings"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/markup"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Preamble defaults.
const (
	defaultDocumentClass = "book"
	defaultPaperSize     = "a4paper"
	defaultFontPackage   = "lmodern"
)

// Exporter renders LaTeX documents.
type Exporter struct{}

// New creates a new LaTeX exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatLaTeX
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export renders the book as a LaTeX document: an options-driven
// preamble, a title block, then one chapter command per chapter.
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

	writePreamble(&b, book, opts)

	b.WriteString("\\begin{document}\n\n\\maketitle\n\n")
	if opts.IncludeTableOfContents {
		b.WriteString("\\tableofcontents\n\n")
	}

	for _, ch := range chapters {
		fmt.Fprintf(&b, "\\chapter{%s}\n\n", markup.EscapeLaTeX(ch.Title))
		body := markup.TranslateInline(ch.Content, markup.LaTeX)
		b.WriteString(strings.TrimRight(body, "\n"))
		b.WriteString("\n\n")
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func writePreamble(b *strings.Builder, book *domain.Book, opts domain.ExportOptions) {
	class := opts.LaTeX.DocumentClass
	if class == "" {
		class = defaultDocumentClass
	}
	paper := opts.LaTeX.PaperSize
	if paper == "" {
		paper = defaultPaperSize
	}

	classOpts := []string{paper}
	if opts.LaTeX.TwoSided {
		classOpts = append(classOpts, "twoside")
	}
	fmt.Fprintf(b, "\\documentclass[%s]{%s}\n", strings.Join(classOpts, ","), class)

	b.WriteString("\\usepackage[utf8]{inputenc}\n")
	b.WriteString("\\usepackage[T1]{fontenc}\n")

	font := opts.LaTeX.FontPackage
	if font == "" || font == "default" {
		font = defaultFontPackage
	}
	fmt.Fprintf(b, "\\usepackage{%s}\n", font)

	if opts.LaTeX.MathSupport {
		b.WriteString("\\usepackage{amsmath}\n\\usepackage{amssymb}\n")
	}
	b.WriteString("\\usepackage[hidelinks]{hyperref}\n")

	b.WriteString("\n")
	fmt.Fprintf(b, "\\title{%s}\n", markup.EscapeLaTeX(book.Title))
	fmt.Fprintf(b, "\\author{%s}\n", markup.EscapeLaTeX(book.Author))
	b.WriteString("\\date{}\n\n")
}
