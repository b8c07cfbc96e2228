package formatter

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// StripHTML turns post markup into plain text: every complete tag becomes a
// space, entities are decoded and runs of whitespace collapse to one space.
// A '<' that never closes is kept as text.
func StripHTML(s string) string {
	if s == "" {
		return s
	}

	var sb strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		raw := z.Raw()
		switch {
		case tt == xhtml.ErrorToken:
			// An unterminated tag at the end of input surfaces here.
			sb.WriteString(html.UnescapeString(string(raw)))
			return strings.Join(strings.Fields(sb.String()), " ")
		case tt == xhtml.TextToken, len(raw) == 0 || raw[len(raw)-1] != '>':
			sb.WriteString(html.UnescapeString(string(raw)))
		default:
			sb.WriteByte(' ')
		}
	}
}
