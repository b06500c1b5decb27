package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResult(t *testing.T) {
	result := SuccessResult(FormatHTML, "<html></html>")
	assert.True(t, result.Success)
	assert.Equal(t, "Successfully exported to HTML", result.Message)
	assert.Equal(t, "<html></html>", result.Content)
}

func TestInvalidBookResult(t *testing.T) {
	// The wording must be identical across formats; callers pattern
	// match on it.
	for _, format := range AllFormats() {
		result := InvalidBookResult(format)
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to export to "+format.DisplayName()+": Invalid book data", result.Message)
		assert.Empty(t, result.Content)
	}
}

func TestFailureResult(t *testing.T) {
	result := FailureResult(FormatLaTeX, "boom")
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to LaTeX: boom", result.Message)
	assert.Empty(t, result.Content)
}

func TestUnsupportedFormatResult(t *testing.T) {
	result := UnsupportedFormatResult("wordstar")
	assert.False(t, result.Success)
	assert.Equal(t, `Failed to export: unsupported format "wordstar"`, result.Message)
}
