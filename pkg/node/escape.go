package node

import "strings"

// EscapeText escapes s for inclusion in element content. '&' is escaped
// when ampersands is true; '<' and '>' when tagDelimiters is true.
func EscapeText(s string, ampersands, tagDelimiters bool) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch {
		case r == '&' && ampersands:
			buf.WriteString("&amp;")
		case r == '<' && tagDelimiters:
			buf.WriteString("&lt;")
		case r == '>' && tagDelimiters:
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttribute escapes s for inclusion in a double-quoted attribute
// value. '"' is always escaped; '&' only when ampersands is true.
func EscapeAttribute(s string, ampersands bool) string {
	if !strings.ContainsAny(s, `&"`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString("&quot;")
		case r == '&' && ampersands:
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
