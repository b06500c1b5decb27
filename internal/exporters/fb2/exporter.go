// Package fb2 renders FictionBook 2.0 documents, the structured
// book-markup XML format: a metadata description header followed by a
// section-per-chapter body. All text nodes pass through the shared XML
// escaping rules.
package fb2

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

const (
	fb2Namespace   = "http://www.gribuser.ru/xml/fictionbook/2.0"
	xlinkNamespace = "http://www.w3.org/1999/xlink"

	// defaultLanguage is used when neither the options nor the book
	// supply one.
	defaultLanguage = "en"
)

// Exporter renders FictionBook 2.0 documents.
type Exporter struct{}

// New creates a new FB2 exporter.
func New() *Exporter {
	return &Exporter{}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return domain.FormatFB2
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export renders the book as an FB2 document: description header with
// genre/author/title/language metadata, then a body with an optional
// generated table of contents and one section per chapter.
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

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<FictionBook xmlns=%q xmlns:l=%q>\n", fb2Namespace, xlinkNamespace)

	writeDescription(&b, book, opts)

	b.WriteString("<body>\n")
	b.WriteString("<title>\n<p>" + markup.EscapeXML(book.Title) + "</p>\n</title>\n")

	if opts.IncludeTableOfContents && len(chapters) > 0 {
		writeTableOfContents(&b, chapters)
	}

	for i, ch := range chapters {
		writeSection(&b, i+1, ch)
	}

	b.WriteString("</body>\n</FictionBook>\n")
	return b.String()
}

func writeDescription(b *strings.Builder, book *domain.Book, opts domain.ExportOptions) {
	meta := opts.FB2.Metadata

	genre := meta.Genre
	if genre == "" {
		genre = book.Genre
	}
	author := meta.Author
	if author == "" {
		author = book.Author
	}
	lang := meta.Language
	if lang == "" {
		lang = defaultLanguage
	}

	b.WriteString("<description>\n<title-info>\n")
	if genre != "" {
		b.WriteString("<genre>" + markup.EscapeXML(genre) + "</genre>\n")
	}
	if author != "" {
		writeAuthor(b, author)
	}
	b.WriteString("<book-title>" + markup.EscapeXML(book.Title) + "</book-title>\n")

	if opts.FB2.IncludeAnnotation && book.Description != "" {
		b.WriteString("<annotation>\n<p>" + markup.EscapeXML(book.Description) + "</p>\n</annotation>\n")
	}
	if book.CoverImage != "" {
		b.WriteString("<coverpage>\n<image l:href=\"" + markup.EscapeXML(book.CoverImage) + "\"/>\n</coverpage>\n")
	}

	b.WriteString("<lang>" + markup.EscapeXML(lang) + "</lang>\n")
	b.WriteString("</title-info>\n")

	id := book.ID
	if id == "" {
		id = "temp"
	}
	b.WriteString("<document-info>\n<id>" + markup.EscapeXML(id) + "</id>\n<version>1.0</version>\n</document-info>\n")
	b.WriteString("</description>\n")
}

// writeAuthor splits the display name on the first space. A
// single-token name keeps an empty last-name element rather than
// dropping it.
func writeAuthor(b *strings.Builder, author string) {
	name := domain.SplitAuthorName(author)
	b.WriteString("<author>\n")
	b.WriteString("<first-name>" + markup.EscapeXML(name.First) + "</first-name>\n")
	b.WriteString("<last-name>" + markup.EscapeXML(name.Last) + "</last-name>\n")
	b.WriteString("</author>\n")
}

// writeTableOfContents emits one anchored entry per chapter.
func writeTableOfContents(b *strings.Builder, chapters []domain.Chapter) {
	b.WriteString("<section id=\"toc\">\n<title>\n<p>Table of Contents</p>\n</title>\n")
	for i, ch := range chapters {
		fmt.Fprintf(b, "<p>%d. %s</p>\n", i+1, markup.EscapeXML(ch.Title))
	}
	b.WriteString("</section>\n")
}

func writeSection(b *strings.Builder, n int, ch domain.Chapter) {
	fmt.Fprintf(b, "<section id=\"chapter%d\">\n", n)
	b.WriteString("<title>\n<p>" + markup.EscapeXML(ch.Title) + "</p>\n</title>\n")

	for _, para := range splitParagraphs(ch.Content) {
		b.WriteString("<p>" + markup.EscapeXML(para) + "</p>\n")
	}
	b.WriteString("</section>\n")
}

// splitParagraphs breaks chapter content on blank lines. Single line
// breaks stay inside their paragraph.
func splitParagraphs(content string) []string {
	var paras []string
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paras = append(paras, block)
	}
	return paras
}
