package markup

import "strings"

// xmlReplacer escapes the five XML-reserved characters to their named
// entities.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes text for inclusion in an XML text node or
// attribute value.
func EscapeXML(text string) string {
	return xmlReplacer.Replace(text)
}

// EscapeLaTeX escapes the LaTeX control characters to their
// literal-producing command sequences. The scan is character by
// character so that replacement output is never re-escaped.
func EscapeLaTeX(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '&', '%', '$', '#', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeLaTeXURL escapes only the characters that break \href and
// \includegraphics arguments. Full literal escaping would corrupt the
// URL itself.
func escapeLaTeXURL(url string) string {
	url = strings.ReplaceAll(url, "%", `\%`)
	url = strings.ReplaceAll(url, "#", `\#`)
	return url
}
