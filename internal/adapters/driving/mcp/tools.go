package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// ExportInput is the input schema for the export_book tool.
type ExportInput struct {
	Book    domain.Book          `json:"book" jsonschema:"the canonical book object to export"`
	Format  string               `json:"format" jsonschema:"target format identifier (txt, markdown, html, json, yaml, fb2, latex, pdf, epub, epub3, mobi, docx, doc, rtf, odt, cbz)"`
	Options domain.ExportOptions `json:"options,omitempty" jsonschema:"rendering options for the target format"`
}

// ExportOutput is the output schema for the export_book tool.
type ExportOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Content string `json:"content,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_book",
		Description: "Export a book into one of the supported document formats",
	}, s.handleExport)
}

// handleExport handles the export_book tool invocation. The engine
// never throws, so an unknown format or invalid book comes back as a
// failure envelope rather than a tool error.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	format, err := domain.ParseFormat(input.Format)
	if err != nil {
		unsupported := domain.UnsupportedFormatResult(input.Format)
		return nil, ExportOutput{Success: false, Message: unsupported.Message}, nil
	}

	result := s.ports.Export.ExportBook(ctx, &input.Book, format, input.Options)

	return nil, ExportOutput{
		Success: result.Success,
		Message: result.Message,
		Content: result.Content,
	}, nil
}
