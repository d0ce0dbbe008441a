package utils

import "strings"

// maxFormattedLine caps how much of a raw DBC line a diagnostic will quote.
// Unlike the NMEA sentences this helper was originally written for (capped by
// the wire protocol at 82 bytes), a BO_/SG_ line can carry dozens of
// comma-joined receivers and run to several hundred columns; truncating keeps
// a single malformed line from dominating a lint report.
const maxFormattedLine = 200

// FormatSpaces renders s for display inside a diagnostic message, escaping
// whitespace control bytes so the offending line stays on one output line,
// and truncating anything past maxFormattedLine.
func FormatSpaces(s string) string {
	truncated := false
	if len(s) > maxFormattedLine {
		s = s[:maxFormattedLine]
		truncated = true
	}

	buf := strings.Builder{}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\v':
			buf.WriteString(`\v`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteByte(c)
		}
	}
	if truncated {
		buf.WriteString("...")
	}
	return buf.String()
}
