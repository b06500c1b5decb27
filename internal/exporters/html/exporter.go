package html

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

// Exporter renders standalone HTML documents. Body text is emitted
// verbatim in this design; only the inline markup dialect is rewritten
// to tags.
type Exporter struct{}

// New creates a new HTML exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatHTML
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export renders the book as a complete HTML5 document.
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

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", book.Title)
	b.WriteString(styleBlock(opts))
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>%s</h1>\n", book.Title)
	if book.Author != "" {
		fmt.Fprintf(&b, "<p class=\"author\">by %s</p>\n", book.Author)
	}
	if book.Genre != "" {
		fmt.Fprintf(&b, "<p class=\"genre\">%s</p>\n", book.Genre)
	}
	if book.Description != "" {
		fmt.Fprintf(&b, "<p class=\"description\">%s</p>\n", book.Description)
	}

	if opts.IncludeTableOfContents && len(chapters) > 0 {
		b.WriteString("<nav class=\"toc\">\n<h2>Table of Contents</h2>\n<ol>\n")
		for _, ch := range chapters {
			fmt.Fprintf(&b, "<li>%s</li>\n", ch.Title)
		}
		b.WriteString("</ol>\n</nav>\n")
	}

	for i, ch := range chapters {
		b.WriteString("<div class=\"chapter\">\n")
		fmt.Fprintf(&b, "<h2>Chapter %d: %s</h2>\n", i+1, ch.Title)
		b.WriteString(chapterBody(ch.Content))
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// chapterBody splits chapter content on blank lines and wraps each
// block in a paragraph. Blocks the inline dialect already turned into
// headings stay unwrapped.
func chapterBody(content string) string {
	var b strings.Builder

	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		translated := markup.TranslateInline(block, markup.HTML)
		if strings.HasPrefix(translated, "<h") {
			b.WriteString(translated + "\n")
			continue
		}
		b.WriteString("<p>" + translated + "</p>\n")
	}
	return b.String()
}

// styleBlock renders the base styling options as an embedded
// stylesheet.
func styleBlock(opts domain.ExportOptions) string {
	font := opts.FontFamily
	if font == "" {
		font = "Georgia, serif"
	}
	size := opts.FontSize
	if size <= 0 {
		size = 12
	}

	fg, bg := "#1a1a1a", "#ffffff"
	if opts.ColorScheme == "dark" {
		fg, bg = "#e6e6e6", "#121212"
	}

	return fmt.Sprintf(
		"<style>\nbody { font-family: %s; font-size: %gpt; color: %s; background: %s; max-width: 40em; margin: 0 auto; padding: 2em; }\n.chapter { margin-top: 2em; }\n</style>\n",
		font, size, fg, bg)
}
