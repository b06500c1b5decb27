package driven

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// Exporter renders a book into exactly one target format.
//
// Export is a pure function of its inputs: no network, no disk I/O,
// no mutation of the book. It never returns an error and must not let
// a panic escape; every failure is folded into the returned
// ExportResult so callers branch on Success alone.
type Exporter interface {
	// Format returns the format this exporter produces.
	Format() domain.Format

	// Validate reports whether the book satisfies this exporter's
	// preconditions. Every exporter enforces at least the shared base
	// rule (non-nil book, non-empty title); format-specific exporters
	// may be stricter but never more lenient.
	Validate(book *domain.Book) bool

	// Export renders the book. For text-bearing formats the result
	// carries the full document; binary-delegated formats report
	// success or failure only.
	Export(ctx context.Context, book *domain.Book, opts domain.ExportOptions) domain.ExportResult
}
