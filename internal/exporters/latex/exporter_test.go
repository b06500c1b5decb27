package latex

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

func export(t *testing.T, book *domain.Book, opts domain.ExportOptions) string {
	t.Helper()
	result := New().Export(context.Background(), book, opts)
	require.True(t, result.Success, result.Message)
	return result.Content
}

func TestExport_Defaults(t *testing.T) {
	book := &domain.Book{
		Title:  "Moonrise",
		Author: "Jane Doe",
		Chapters: []domain.Chapter{
			{Title: "Ch1", Content: "Plain text.", Order: 0},
		},
	}

	content := export(t, book, domain.ExportOptions{})
	assert.Contains(t, content, `\documentclass[a4paper]{book}`)
	assert.Contains(t, content, `\usepackage{lmodern}`)
	assert.Contains(t, content, `\title{Moonrise}`)
	assert.Contains(t, content, `\author{Jane Doe}`)
	assert.Contains(t, content, `\chapter{Ch1}`)
	assert.Contains(t, content, "Plain text.")
	assert.NotContains(t, content, `\tableofcontents`)
	assert.NotContains(t, content, `\usepackage{amsmath}`)
	assert.True(t, strings.HasSuffix(content, "\\end{document}\n"))
}

func TestExport_PreambleOptions(t *testing.T) {
	book := &domain.Book{Title: "Moonrise"}
	opts := domain.ExportOptions{
		IncludeTableOfContents: true,
		LaTeX: domain.LaTeXOptions{
			DocumentClass: "memoir",
			PaperSize:     "letterpaper",
			FontPackage:   "palatino",
			MathSupport:   true,
			TwoSided:      true,
		},
	}

	content := export(t, book, opts)
	assert.Contains(t, content, `\documentclass[letterpaper,twoside]{memoir}`)
	assert.Contains(t, content, `\usepackage{palatino}`)
	assert.Contains(t, content, `\usepackage{amsmath}`)
	assert.Contains(t, content, `\usepackage{amssymb}`)
	assert.Contains(t, content, `\tableofcontents`)
}

func TestExport_DefaultFontPackageKeyword(t *testing.T) {
	book := &domain.Book{Title: "Moonrise"}
	opts := domain.ExportOptions{LaTeX: domain.LaTeXOptions{FontPackage: "default"}}

	content := export(t, book, opts)
	assert.Contains(t, content, `\usepackage{lmodern}`)
	assert.NotContains(t, content, `\usepackage{default}`)
}

func TestExport_InvalidBook(t *testing.T) {
	result := New().Export(context.Background(), nil, domain.ExportOptions{})
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to LaTeX: Invalid book data", result.Message)
}

func TestExport_InlineDialect(t *testing.T) {
	book := &domain.Book{
		Title: "Moonrise",
		Chapters: []domain.Chapter{
			{Title: "Ch1", Content: "A **bold** claim\n\n# First Light\n\nSee [notes](https://example.com)", Order: 0},
		},
	}

	content := export(t, book, domain.ExportOptions{})
	assert.Contains(t, content, `\textbf{bold}`)
	assert.Contains(t, content, `\section{First Light}`)
	assert.Contains(t, content, `\href{https://example.com}{notes}`)
}

func TestExport_HeadingNesting(t *testing.T) {
	book := &domain.Book{
		Title: "Moonrise",
		Chapters: []domain.Chapter{
			{Title: "Ch1", Content: "# a\n## b\n### c\n#### d\n##### e", Order: 0},
		},
	}

	content := export(t, book, domain.ExportOptions{})
	for _, cmd := range []string{`\section{a}`, `\subsection{b}`, `\subsubsection{c}`, `\paragraph{d}`, `\subparagraph{e}`} {
		assert.Contains(t, content, cmd)
	}
}

// No metacharacter from the torture string may survive outside a known
// command token.
func TestExport_EscapingTorture(t *testing.T) {
	book := &domain.Book{
		Title: "Moonrise & Co: 100% _done_",
		Chapters: []domain.Chapter{
			{Title: "S{p}ecials", Content: `& < > " ' \ % $ # _ { } ~ ^`, Order: 0},
		},
	}

	content := export(t, book, domain.ExportOptions{})
	assert.Contains(t, content, `\title{Moonrise \& Co: 100\% \_done\_}`)
	assert.Contains(t, content, `\chapter{S\{p\}ecials}`)
	assert.Contains(t, content, `\textbackslash{}`)
	assert.Contains(t, content, `\textasciitilde{}`)
	assert.Contains(t, content, `\textasciicircum{}`)
}

func TestExport_ChapterOrdering(t *testing.T) {
	book := &domain.Book{
		Title: "Moonrise",
		Chapters: []domain.Chapter{
			{Title: "Second", Order: 1},
			{Title: "First", Order: 0},
		},
	}

	content := export(t, book, domain.ExportOptions{})
	assert.Less(t,
		strings.Index(content, `\chapter{First}`),
		strings.Index(content, `\chapter{Second}`))
}

func TestExport_Idempotent(t *testing.T) {
	book := &domain.Book{
		Title:    "Moonrise",
		Chapters: []domain.Chapter{{Title: "Ch1", Content: "text", Order: 0}},
	}

	first := export(t, book, domain.ExportOptions{})
	second := export(t, book, domain.ExportOptions{})
	assert.Equal(t, first, second)
}
