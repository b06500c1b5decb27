package domain

import "fmt"

// ExportResult is the uniform envelope returned by every exporter.
// Callers branch solely on Success and display Message on failure;
// the engine never surfaces an error or a panic through any other path.
type ExportResult struct {
	// Success reports whether the export completed.
	Success bool `json:"success"`

	// Message is a human-readable outcome, always present.
	Message string `json:"message"`

	// Content holds the rendered document for text-bearing formats.
	// It is empty for formats whose binary encoding is delegated to an
	// external encoder.
	Content string `json:"content,omitempty"`
}

// SuccessResult builds the standard success envelope for a format.
// Content may be empty for binary-delegated formats.
func SuccessResult(format Format, content string) ExportResult {
	return ExportResult{
		Success: true,
		Message: fmt.Sprintf("Successfully exported to %s", format.DisplayName()),
		Content: content,
	}
}

// InvalidBookResult builds the failure envelope for a book that fails
// validation. The wording is identical across all exporters so callers
// can treat the message as structurally predictable.
func InvalidBookResult(format Format) ExportResult {
	return ExportResult{
		Success: false,
		Message: fmt.Sprintf("Failed to export to %s: Invalid book data", format.DisplayName()),
	}
}

// FailureResult builds the failure envelope for an error raised during
// content construction, preserving the underlying message for
// diagnostics.
func FailureResult(format Format, reason string) ExportResult {
	return ExportResult{
		Success: false,
		Message: fmt.Sprintf("Failed to export to %s: %s", format.DisplayName(), reason),
	}
}

// UnsupportedFormatResult builds the failure envelope for a format
// identifier the dispatcher cannot resolve.
func UnsupportedFormatResult(requested string) ExportResult {
	return ExportResult{
		Success: false,
		Message: fmt.Sprintf("Failed to export: unsupported format %q", requested),
	}
}
