package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Book is the canonical representation of a book consumed by every
// exporter. It is owned by the caller and never mutated by the engine.
type Book struct {
	// ID is an opaque identifier. An empty ID is treated as "temp".
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Title is the only field required for export.
	Title string `json:"title" yaml:"title"`

	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Genre       string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// CoverImage is an opaque URI/blob reference. The engine never
	// decodes it.
	CoverImage string `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`

	// CoverPage and CreditsPage are free text/markup blocks.
	CoverPage   string `json:"coverPage,omitempty" yaml:"coverPage,omitempty"`
	CreditsPage string `json:"creditsPage,omitempty" yaml:"creditsPage,omitempty"`

	// TableOfContents and CharacterList are precomputed text blocks.
	// Exporters may regenerate a table of contents when an option
	// requests it; they never regenerate the character list.
	TableOfContents string `json:"tableOfContents,omitempty" yaml:"tableOfContents,omitempty"`
	CharacterList   string `json:"characterList,omitempty" yaml:"characterList,omitempty"`

	// Chapters is the book body. Rendering order is ascending Order,
	// not slice position.
	Chapters []Chapter `json:"chapters" yaml:"chapters"`

	// Content is the legacy flat-content fallback, used only when
	// Chapters is empty.
	Content []string `json:"content,omitempty" yaml:"content,omitempty"`

	// Provenance metadata. Never consulted by format logic.
	Published bool   `json:"published" yaml:"published"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Chapter is an ordered unit of book content.
type Chapter struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`

	// Order defines the rendering sequence and is unique within a book.
	Order int `json:"order" yaml:"order"`
}

// Validate reports whether the book satisfies the base precondition
// shared by every exporter: non-nil with a non-empty title. Individual
// exporters may add stricter checks but must not relax this one.
func (b *Book) Validate() bool {
	return b != nil && strings.TrimSpace(b.Title) != ""
}

// Body returns the chapters to render, sorted by ascending Order.
// The input slice is never modified.
//
// When Chapters is empty and the legacy Content blocks are populated,
// one synthetic chapter per block is returned, titled "Chapter N".
// Every exporter renders via Body so the fallback is uniform across
// formats.
func (b *Book) Body() []Chapter {
	if b == nil {
		return nil
	}

	if len(b.Chapters) == 0 {
		return b.legacyChapters()
	}

	chapters := make([]Chapter, len(b.Chapters))
	copy(chapters, b.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Order < chapters[j].Order
	})
	return chapters
}

// legacyChapters synthesizes chapters from the flat Content blocks.
func (b *Book) legacyChapters() []Chapter {
	if len(b.Content) == 0 {
		return nil
	}

	chapters := make([]Chapter, 0, len(b.Content))
	for i, block := range b.Content {
		chapters = append(chapters, Chapter{
			Title:   fmt.Sprintf("Chapter %d", i+1),
			Content: block,
			Order:   i,
		})
	}
	return chapters
}

// AuthorName holds an author name split into its components.
type AuthorName struct {
	First string
	Last  string
}

// SplitAuthorName splits a display name on the first space: the first
// token becomes the first name and the remainder the last name. A
// single-token name yields an empty last name; it is kept as a first
// name, not dropped.
func SplitAuthorName(name string) AuthorName {
	name = strings.TrimSpace(name)
	if name == "" {
		return AuthorName{}
	}

	first, last, found := strings.Cut(name, " ")
	if !found {
		return AuthorName{First: name}
	}
	return AuthorName{First: first, Last: strings.TrimSpace(last)}
}
