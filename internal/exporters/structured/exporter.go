// Package structured renders the generic structured data formats.
// The JSON variant is a direct, order-preserving serialization of the
// full book value with no transformation; it is the canonical
// round-trip format. The YAML variant serializes the same value.
package structured

import (
	"context"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/exporters"
)

// Ensure both variants implement the interface.
var (
	_ driven.Exporter = (*Exporter)(nil)
)

// Exporter renders one structured data variant.
type Exporter struct {
	format domain.Format
}

// NewJSON creates the JSON exporter.
func NewJSON() *Exporter {
	return &Exporter{format: domain.FormatJSON}
}

// NewYAML creates the YAML exporter.
func NewYAML() *Exporter {
	return &Exporter{format: domain.FormatYAML}
}

// Format returns the format this exporter produces.
func (e *Exporter) Format() domain.Format {
	return e.format
}

// Validate applies the shared base precondition.
func (e *Exporter) Validate(book *domain.Book) bool {
	return book.Validate()
}

// Export serializes the full book value. Options are accepted for
// contract uniformity but carry nothing a direct serialization could
// honour.
func (e *Exporter) Export(_ context.Context, book *domain.Book, _ domain.ExportOptions) domain.ExportResult {
	if !e.Validate(book) {
		return domain.InvalidBookResult(e.format)
	}

	return exporters.Render(e.format, func() (string, error) {
		if e.format == domain.FormatYAML {
			out, err := yaml.Marshal(book)
			if err != nil {
				return "", err
			}
			return string(out), nil
		}

		out, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	})
}
