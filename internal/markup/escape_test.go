package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "all reserved characters",
			input:    `& < > " '`,
			expected: "&amp; &lt; &gt; &quot; &apos;",
		},
		{
			name:     "ampersand first is not double escaped",
			input:    "&lt;",
			expected: "&amp;lt;",
		},
		{
			name:     "plain text untouched",
			input:    "Hello, world",
			expected: "Hello, world",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeXML(tt.input))
		})
	}
}

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple specials",
			input:    "50% of $10 & #1",
			expected: `50\% of \$10 \& \#1`,
		},
		{
			name:     "braces and underscore",
			input:    "a_{b}",
			expected: `a\_\{b\}`,
		},
		{
			name:     "backslash does not re-escape its own output",
			input:    `\&`,
			expected: `\textbackslash{}\&`,
		},
		{
			name:     "tilde and caret",
			input:    "~x^2",
			expected: `\textasciitilde{}x\textasciicircum{}2`,
		},
		{
			name:     "plain text untouched",
			input:    "Hello, world",
			expected: "Hello, world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}

// The torture string from the export contract: every reserved
// character of both grammars in one input.
func TestEscape_TortureString(t *testing.T) {
	torture := "& < > \" ' \\ % $ # _ { } ~ ^"

	xml := EscapeXML(torture)
	for _, forbidden := range []string{"<", ">", "\""} {
		assert.NotContains(t, xml, forbidden)
	}
	// Every & in the output must start an entity.
	for i := 0; i < len(xml); i++ {
		if xml[i] != '&' {
			continue
		}
		rest := xml[i:]
		ok := strings.HasPrefix(rest, "&amp;") ||
			strings.HasPrefix(rest, "&lt;") ||
			strings.HasPrefix(rest, "&gt;") ||
			strings.HasPrefix(rest, "&quot;") ||
			strings.HasPrefix(rest, "&apos;")
		assert.True(t, ok, "bare ampersand at %d in %q", i, xml)
	}

	tex := EscapeLaTeX(torture)
	// No metacharacter may survive outside a known command token.
	stripped := tex
	for _, token := range []string{
		`\textbackslash{}`, `\textasciitilde{}`, `\textasciicircum{}`,
		`\&`, `\%`, `\$`, `\#`, `\_`, `\{`, `\}`,
	} {
		stripped = strings.ReplaceAll(stripped, token, "")
	}
	for _, meta := range []string{`\`, "%", "$", "#", "_", "{", "}", "~", "^", "&"} {
		assert.NotContains(t, stripped, meta)
	}
}
