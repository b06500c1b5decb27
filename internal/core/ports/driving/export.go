package driving

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// ExportService is the single call surface consumed by the UI and
// download collaborators. One call, one format, one result; no retry
// and no format-to-format fallback.
type ExportService interface {
	// ExportBook renders the book into the requested format. It never
	// returns an error: validation failures, generation failures and
	// unsupported formats all surface as a failure ExportResult.
	ExportBook(ctx context.Context, book *domain.Book, format domain.Format, opts domain.ExportOptions) domain.ExportResult

	// Formats describes the supported formats in display order.
	Formats() []FormatInfo
}

// FormatInfo describes one supported format for listing surfaces.
type FormatInfo struct {
	// Format is the identifier accepted by ExportBook.
	Format domain.Format

	// DisplayName is the name used in result messages.
	DisplayName string

	// Extension is the conventional file extension, without the dot.
	Extension string

	// TextBearing reports whether results carry rendered content.
	TextBearing bool
}
