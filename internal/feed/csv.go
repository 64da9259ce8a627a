package feed

import "strings"

// SplitLine splits one logical CSV row into its raw field values.
//
// A field is either fully unquoted or fully wrapped in double quotes; inside
// quotes a literal quote is written as "" and commas do not separate fields.
// Every emitted field is whitespace-trimmed. Shape decisions (too few / too
// many fields) belong to the caller.
func SplitLine(line string) []string {
	fields := make([]string, 0, 16)
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuotes && ch == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				// escaped quote
				b.WriteByte('"')
				i++
				continue
			}
			inQuotes = false
		case ch == '"':
			inQuotes = true
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// SplitRow tokenizes a data row and drops fully-empty trailing fields beyond
// want columns, so a trailing delimiter does not fail the shape check.
func SplitRow(line string, want int) []string {
	fields := SplitLine(line)
	for len(fields) > want && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// SplitTags parses a multi-value cell like `Fantasy, "Sci-Fi, Horror"` into
// trimmed tokens. The cell has already been unquoted by the outer CSV pass,
// but may carry an inner quoted run protecting an embedded comma. Empty and
// whitespace-only tokens are discarded; empty input yields no tokens.
func SplitTags(cell string) []string {
	var tags []string

	for i := 0; i < len(cell); {
		// skip delimiters and padding between tokens
		for i < len(cell) && (cell[i] == ',' || cell[i] == ' ' || cell[i] == '\t') {
			i++
		}
		if i >= len(cell) {
			break
		}

		var tag string
		if cell[i] == '"' {
			rest := cell[i+1:]
			if j := strings.IndexByte(rest, '"'); j >= 0 {
				tag = rest[:j]
				i += j + 2
			} else {
				// unterminated quote: take the remainder
				tag = rest
				i = len(cell)
			}
		} else {
			rest := cell[i:]
			if j := strings.IndexByte(rest, ','); j >= 0 {
				tag = rest[:j]
				i += j
			} else {
				tag = rest
				i = len(cell)
			}
		}

		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
