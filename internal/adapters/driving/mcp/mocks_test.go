package mcp

import (
	"context"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
)

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	result  domain.ExportResult
	formats []driving.FormatInfo

	lastBook   *domain.Book
	lastFormat domain.Format
	lastOpts   domain.ExportOptions
}

func (m *mockExportService) ExportBook(
	_ context.Context,
	book *domain.Book,
	format domain.Format,
	opts domain.ExportOptions,
) domain.ExportResult {
	m.lastBook = book
	m.lastFormat = format
	m.lastOpts = opts
	return m.result
}

func (m *mockExportService) Formats() []driving.FormatInfo {
	return m.formats
}
