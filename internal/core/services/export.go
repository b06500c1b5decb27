package services

import (
	"context"
	"fmt"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService dispatches export calls to the registered exporters
// and normalizes every outcome into an ExportResult. It holds no state
// across calls; concurrent exports need no coordination.
type ExportService struct {
	registry driven.ExporterRegistry
}

// NewExportService creates a new export service.
func NewExportService(registry driven.ExporterRegistry) *ExportService {
	return &ExportService{registry: registry}
}

// ExportBook renders the book into the requested format. One call, one
// format, one result: there is no retry and no format-to-format
// fallback, and no failure ever surfaces as an error or panic.
func (s *ExportService) ExportBook(
	ctx context.Context, book *domain.Book, format domain.Format, opts domain.ExportOptions,
) (result domain.ExportResult) {
	logger.Section("Export")
	logger.Debug("Format: %s", format)

	exporter, ok := s.registry.Resolve(format)
	if !ok {
		logger.Warn("unsupported format %q", format)
		return domain.UnsupportedFormatResult(string(format))
	}

	// Exporters fold their own failures into the result; this guard
	// covers a misbehaving registration so the no-throw contract holds
	// for the caller regardless.
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("exporter for %s panicked: %v", format, r)
			result = domain.FailureResult(format, fmt.Sprint(r))
		}
	}()

	result = exporter.Export(ctx, book, opts)
	logger.Debug("Result: success=%v", result.Success)
	return result
}

// Formats describes the supported formats in display order.
func (s *ExportService) Formats() []driving.FormatInfo {
	formats := s.registry.Formats()
	infos := make([]driving.FormatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, driving.FormatInfo{
			Format:      f,
			DisplayName: f.DisplayName(),
			Extension:   f.Extension(),
			TextBearing: f.TextBearing(),
		})
	}
	return infos
}
