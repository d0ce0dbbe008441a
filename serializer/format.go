package serializer

import (
	"strconv"
	"strings"
)

// quote renders s as a double-quoted DBC string literal, escaping '\\' and
// '"' (the only two escapes the grammar recognizes, see spec.md §4.2).
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat renders f as the shortest decimal string that parses back to
// exactly f. Whole numbers render without a fractional part ("0", not
// "0.0"), matching the factor/offset/limit style Vector tooling emits.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatReceivers renders a signal or message's node list, substituting the
// well-known placeholder when the set is empty.
func formatReceivers(names []string) string {
	if len(names) == 0 {
		return "Vector__XXX"
	}
	return strings.Join(names, ",")
}
