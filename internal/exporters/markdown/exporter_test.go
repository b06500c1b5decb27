package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

func TestExport_Success(t *testing.T) {
	exporter := New()
	book := &domain.Book{
		Title:       "Moonrise",
		Author:      "Jane Doe",
		Genre:       "Mystery",
		Description: "A night story.",
		Chapters: []domain.Chapter{
			{Title: "Ch1", Content: "Some **bold** text", Order: 0},
		},
	}

	result := exporter.Export(context.Background(), book, domain.ExportOptions{})
	require.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Content, "# Moonrise\n"))
	assert.Contains(t, result.Content, "*by Jane Doe*")
	assert.Contains(t, result.Content, "**Genre:** Mystery")
	assert.Contains(t, result.Content, "A night story.")
	assert.Contains(t, result.Content, "## Chapter 1: Ch1")
	// Content is already in the inline dialect and stays verbatim.
	assert.Contains(t, result.Content, "Some **bold** text")
}

func TestExport_InvalidBook(t *testing.T) {
	exporter := New()

	result := exporter.Export(context.Background(), nil, domain.ExportOptions{})
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to Markdown: Invalid book data", result.Message)
}

func TestExport_TableOfContents(t *testing.T) {
	exporter := New()
	book := &domain.Book{
		Title:    "Moonrise",
		Chapters: []domain.Chapter{{Title: "Opening", Order: 0}},
	}

	result := exporter.Export(context.Background(), book, domain.ExportOptions{IncludeTableOfContents: true})
	require.True(t, result.Success)
	assert.Contains(t, result.Content, "## Table of Contents\n\n1. Opening")
}

func TestExport_ChapterOrdering(t *testing.T) {
	exporter := New()
	book := &domain.Book{
		Title: "Moonrise",
		Chapters: []domain.Chapter{
			{Title: "Late", Order: 5},
			{Title: "Early", Order: 2},
		},
	}

	result := exporter.Export(context.Background(), book, domain.ExportOptions{})
	require.True(t, result.Success)
	assert.Less(t,
		strings.Index(result.Content, "Chapter 1: Early"),
		strings.Index(result.Content, "Chapter 2: Late"))
}
