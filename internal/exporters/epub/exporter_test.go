package epub

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

func TestVariants(t *testing.T) {
	assert.Equal(t, domain.FormatEPUB, New().Format())
	assert.Equal(t, domain.FormatEPUB3, NewV3().Format())
}

func TestExport_Success(t *testing.T) {
	book := &domain.Book{
		Title:    "Moonrise",
		Chapters: []domain.Chapter{{Title: "Ch1", Content: "text", Order: 0}},
	}

	result := New().Export(context.Background(), book, domain.ExportOptions{})
	require.True(t, result.Success)
	assert.Equal(t, "Successfully exported to EPUB", result.Message)
	// Binary-delegated formats carry no content.
	assert.Empty(t, result.Content)
}

func TestExport_InvalidBook(t *testing.T) {
	result := NewV3().Export(context.Background(), &domain.Book{}, domain.ExportOptions{})
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to EPUB3: Invalid book data", result.Message)
}

func TestBuildManifest_SpineOrder(t *testing.T) {
	book := &domain.Book{
		Title: "Moonrise",
		Chapters: []domain.Chapter{
			{Title: "Second", Order: 1},
			{Title: "First", Order: 0},
		},
	}

	m := buildManifest(book, "2.0")
	assert.Equal(t, []string{"First", "Second"}, m.Spine)
	assert.Equal(t, "2.0", m.Version)
}

func TestBuildManifest_Identifier(t *testing.T) {
	withID := buildManifest(&domain.Book{ID: "b-7", Title: "Moonrise"}, "2.0")
	assert.Equal(t, "b-7", withID.Identifier)

	withoutID := buildManifest(&domain.Book{Title: "Moonrise"}, "3.0")
	assert.True(t, strings.HasPrefix(withoutID.Identifier, "urn:uuid:"))
	assert.Len(t, withoutID.Identifier, len("urn:uuid:")+36)
}

func TestBuildManifest_LegacyContent(t *testing.T) {
	book := &domain.Book{
		Title:   "Moonrise",
		Content: []string{"a", "b"},
	}

	m := buildManifest(book, "2.0")
	assert.Equal(t, []string{"Chapter 1", "Chapter 2"}, m.Spine)
}
