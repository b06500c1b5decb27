package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"txt", FormatTXT},
		{"text", FormatTXT},
		{"TXT", FormatTXT},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"html", FormatHTML},
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"fb2", FormatFB2},
		{"latex", FormatLaTeX},
		{"tex", FormatLaTeX},
		{"pdf", FormatPDF},
		{"epub", FormatEPUB},
		{"epub3", FormatEPUB3},
		{"mobi", FormatMOBI},
		{"docx", FormatDOCX},
		{"doc", FormatDOC},
		{"rtf", FormatRTF},
		{"odt", FormatODT},
		{"cbz", FormatCBZ},
		{" fb2 ", FormatFB2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("wordstar")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAllFormats_CoversEnumeration(t *testing.T) {
	formats := AllFormats()
	assert.Len(t, formats, 16)

	// Every listed format must parse back to itself.
	for _, f := range formats {
		parsed, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestFormatDisplayName(t *testing.T) {
	assert.Equal(t, "LaTeX", FormatLaTeX.DisplayName())
	assert.Equal(t, "FB2", FormatFB2.DisplayName())
	assert.Equal(t, "Markdown", FormatMarkdown.DisplayName())

	// Unknown values fall back to uppercasing.
	assert.Equal(t, "XYZ", Format("xyz").DisplayName())
}

func TestFormatTextBearing(t *testing.T) {
	assert.True(t, FormatTXT.TextBearing())
	assert.True(t, FormatFB2.TextBearing())
	assert.True(t, FormatLaTeX.TextBearing())
	assert.False(t, FormatPDF.TextBearing())
	assert.False(t, FormatEPUB.TextBearing())
	assert.False(t, FormatCBZ.TextBearing())
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, "md", FormatMarkdown.Extension())
	assert.Equal(t, "tex", FormatLaTeX.Extension())
	assert.Equal(t, "epub", FormatEPUB3.Extension())
	assert.Equal(t, "fb2", FormatFB2.Extension())
}
