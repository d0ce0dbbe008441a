// Package parser implements the DBC grammar: a line-oriented lexer feeding a
// two-pass statement parser that resolves every cross-object reference in
// the source file into a dbc.Network. See spec.md §4.2.
package parser

import "strings"

// splitLines splits raw DBC source into lines, accepting either LF or CRLF
// endings (spec.md §4.2/§6). The trailing newline, if any, produces no
// extra empty line.
func splitLines(data []byte) []string {
	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// firstField returns the first whitespace-delimited token of line, the
// statement tag that selects a grammar rule (spec.md §4.2's tag table), and
// the remainder of the line after that token (with leading whitespace
// trimmed).
func firstField(line string) (tag string, rest string) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], strings.TrimLeft(trimmed[i:], " \t")
}

// quoteAwareFields splits s on whitespace, except that a double-quoted
// region (honoring \" and \\ as the only escapes, per spec.md §4.2) is kept
// as a single field with its quotes stripped and escapes resolved.
func quoteAwareFields(s string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	haveField := false
	flush := func() {
		if haveField {
			fields = append(fields, cur.String())
			cur.Reset()
			haveField = false
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuotes:
			if c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
				cur.WriteByte(s[i+1])
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
				continue
			}
			cur.WriteByte(c)
		case c == '"':
			inQuotes = true
			haveField = true
		case c == ' ' || c == '\t':
			flush()
		default:
			haveField = true
			cur.WriteByte(c)
		}
	}
	flush()
	return fields
}

// splitTopLevel splits s on sep, trimming whitespace from each resulting
// part and dropping empty parts. Used for comma-separated lists (receivers,
// node names, enum value lists).
func splitTopLevel(s string, sep byte) []string {
	var out []string
	for _, part := range strings.Split(s, string(sep)) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// trimTrailingSemicolon trims surrounding whitespace from s, then removes one
// optional trailing ';', which several statement forms terminate with.
// Whitespace between the last token and the ';' is left in place.
func trimTrailingSemicolon(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ";")
}
