package driven

import (
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// ExporterRegistry resolves format identifiers to exporters.
// The supported set is an explicit data structure built at startup,
// not a module-loading side effect.
type ExporterRegistry interface {
	// Register adds an exporter. A later registration for the same
	// format replaces the earlier one.
	Register(exporter Exporter)

	// Resolve returns the exporter for a format, or false when the
	// format is not registered.
	Resolve(format domain.Format) (Exporter, bool)

	// Formats returns the registered formats in display order.
	Formats() []domain.Format
}
