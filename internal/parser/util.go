package parser

import "strings"

// splitDocument splits raw report text into lines, accepting both \n and
// \r\n row delimiters.
func splitDocument(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// splitLine splits one CSV row on commas, keeping quoted spans intact so
// a field like "LAVA E SECA, 10kg" stays one field.
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

// stripQuotes removes surrounding whitespace and double quotes from a
// raw field.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// isDelimitersOnly reports whether a line holds nothing but commas and
// blanks, e.g. the ",,,,,,," spacer rows some exports emit.
func isDelimitersOnly(line string) bool {
	for _, r := range line {
		if r != ',' && r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func containsAll(line string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(line, needle) {
			return false
		}
	}
	return true
}
