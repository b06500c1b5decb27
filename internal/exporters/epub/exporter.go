// Package epub prepares books for the reflowable e-book container
// formats. The engine owns input validation and the structural
// contract (reading order, container identifier); the binary container
// encoding itself is delegated to an external encoder.
package epub

import (
	"context"

	"github.com/google/uuid"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure both variants implement the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter prepares one EPUB container variant.
type Exporter struct {
	format  domain.Format
	version string
}

// New creates the EPUB 2 exporter.
func New() *Exporter {
	return &Exporter{format: domain.FormatEPUB, version: "2.0"}
}

// NewV3 creates the EPUB 3 exporter.
func NewV3() *Exporter {
	return &Exporter{format: domain.FormatEPUB3, version: "3.0"}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return e.format
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export validates the book and assembles the container manifest for
// the external encoder. No content is returned for this format family.
func (e *Exporter) Export(_ context.Context, book *domain.Book, _ domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.format)
	}

	return exporters.Render(e.format, func() (string, error) {
		m := buildManifest(book, e.version)
		logger.Debug("prepared %s container %s with %d spine items",
			e.format.DisplayName(), m.Identifier, len(m.Spine))
		return "", nil
	})
}

// manifest describes the container handed to the external encoder.
type manifest struct {
	Identifier string
	Title      string
	Author     string
	Version    string

	// Spine holds chapter titles in reading order.
	Spine []string

	// CoverRef is the opaque cover reference, passed through undecoded.
	CoverRef string
}

// buildManifest resolves reading order and the container identifier.
// Books without an ID get a fresh urn:uuid identifier; EPUB readers
// require one even for temp books.
func buildManifest(book *domain.Book, version string) manifest {
	m := manifest{
		Identifier: "urn:uuid:" + uuid.New().String(),
		Title:      book.Title,
		Author:     book.Author,
		Version:    version,
		CoverRef:   book.CoverImage,
	}
	if book.ID != "" {
		m.Identifier = book.ID
	}

	for _, ch := range book.Body() {
		m.Spine = append(m.Spine, ch.Title)
	}
	return m
}
