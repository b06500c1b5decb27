package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Grammar describes how one target format renders the inline markup
// dialect. Plain text segments are passed through escape before any
// grammar control sequence is reinserted, so user content containing
// metacharacters can never break document structure.
type Grammar struct {
	name    string
	escape  func(string) string
	bold    func(inner string) string
	italic  func(inner string) string
	code    func(inner string) string
	link    func(text, url string) string
	image   func(alt, url string) string
	heading func(level int, text string) string
}

// Name returns the grammar's identifier, for diagnostics.
func (g Grammar) Name() string { return g.name }

// LaTeX renders the inline dialect as LaTeX commands with full literal
// escaping of plain text.
var LaTeX = Grammar{
	name:   "latex",
	escape: EscapeLaTeX,
	bold:   func(s string) string { return `\textbf{` + s + `}` },
	italic: func(s string) string { return `\textit{` + s + `}` },
	code:   func(s string) string { return `\texttt{` + s + `}` },
	link: func(text, url string) string {
		return `\href{` + escapeLaTeXURL(url) + `}{` + text + `}`
	},
	image: func(_, url string) string {
		return `\includegraphics{` + escapeLaTeXURL(url) + `}`
	},
	heading: latexHeading,
}

// latexSections maps heading depth to sectioning commands.
var latexSections = []string{`\section`, `\subsection`, `\subsubsection`, `\paragraph`, `\subparagraph`}

func latexHeading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > len(latexSections) {
		level = len(latexSections)
	}
	return latexSections[level-1] + "{" + text + "}"
}

// HTML renders the inline dialect as HTML tags. Body text is not
// escaped in this grammar; the hypertext exporter emits user content
// verbatim.
var HTML = Grammar{
	name:   "html",
	escape: func(s string) string { return s },
	bold:   func(s string) string { return "<strong>" + s + "</strong>" },
	italic: func(s string) string { return "<em>" + s + "</em>" },
	code:   func(s string) string { return "<code>" + s + "</code>" },
	link: func(text, url string) string {
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, text)
	},
	image: func(alt, url string) string {
		return fmt.Sprintf(`<img src="%s" alt="%s">`, url, alt)
	},
	heading: func(level int, text string) string {
		if level < 1 {
			level = 1
		}
		if level > 5 {
			level = 5
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, text, level)
	},
}

// Inline span patterns, in match priority order. Image must precede
// link: a link pattern would otherwise claim the bracket body of an
// image. Bold precedes italic for the same reason with asterisks.
var inlineSpans = []struct {
	re     *regexp.Regexp
	render func(g Grammar, groups []string) string
}{
	{
		re: regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`),
		render: func(g Grammar, m []string) string {
			return g.image(g.escape(m[1]), m[2])
		},
	},
	{
		re: regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`),
		render: func(g Grammar, m []string) string {
			return g.link(g.escape(m[1]), m[2])
		},
	},
	{
		re: regexp.MustCompile("`([^`]+)`"),
		render: func(g Grammar, m []string) string {
			return g.code(g.escape(m[1]))
		},
	},
	{
		re: regexp.MustCompile(`\*\*([^*]+)\*\*`),
		render: func(g Grammar, m []string) string {
			return g.bold(g.escape(m[1]))
		},
	},
	{
		re: regexp.MustCompile(`\*([^*]+)\*`),
		render: func(g Grammar, m []string) string {
			return g.italic(g.escape(m[1]))
		},
	},
}

var headingRe = regexp.MustCompile(`^(#{1,5})\s+(.*)$`)

// TranslateInline converts the inline markup dialect (bold, italic,
// code, links, images, headings) into the target grammar. Text outside
// any markup span is escaped with the grammar's escape rule before the
// grammar's own control sequences are reinserted.
func TranslateInline(text string, g Grammar) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			out = append(out, g.heading(len(m[1]), translateSpans(m[2], g)))
			continue
		}
		out = append(out, translateSpans(line, g))
	}
	return strings.Join(out, "\n")
}

// translateSpans walks a single line, repeatedly taking the leftmost
// markup span and escaping the literal text between spans.
func translateSpans(line string, g Grammar) string {
	var b strings.Builder

	for line != "" {
		bestIdx := -1
		var bestLoc []int
		var bestSpan int

		for i, span := range inlineSpans {
			loc := span.re.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}
			if bestIdx == -1 || loc[0] < bestIdx {
				bestIdx = loc[0]
				bestLoc = loc
				bestSpan = i
			}
		}

		if bestIdx == -1 {
			b.WriteString(g.escape(line))
			break
		}

		b.WriteString(g.escape(line[:bestLoc[0]]))

		span := inlineSpans[bestSpan]
		groups := make([]string, 0, len(bestLoc)/2)
		for j := 0; j < len(bestLoc); j += 2 {
			if bestLoc[j] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, line[bestLoc[j]:bestLoc[j+1]])
		}
		b.WriteString(span.render(g, groups))

		line = line[bestLoc[1]:]
	}
	return b.String()
}
