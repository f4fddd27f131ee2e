package parser

import "strings"

const (
	periodMarker   = "Sales from"
	operatorMarker = "Operator:"

	// Operator lines sit in the report preamble, never deep in the data.
	operatorScanLines = 50
)

// findHeaderRow returns the index of the first data row: the line after
// the first one naming both the Date and Time columns. The exact row
// index varies between exports, so the header is located by content, not
// position. A missing header row degrades to line 0 rather than failing;
// the caller decides whether to attach an advisory.
func findHeaderRow(lines []string) (int, bool) {
	for i, line := range lines {
		if i >= maxScanLines {
			break
		}
		if strings.Contains(line, "Date") && strings.Contains(line, "Time") {
			return i + 1, true
		}
	}
	return 0, false
}

// extractPeriod pulls the reporting period out of the "Sales from X
// through Y" preamble line, rewriting the infix to "X - Y".
func extractPeriod(lines []string) (string, bool) {
	for i, line := range lines {
		if i >= maxScanLines {
			break
		}
		if !strings.Contains(line, periodMarker) {
			continue
		}
		for _, field := range splitLine(line) {
			field = stripQuotes(field)
			idx := strings.Index(field, periodMarker)
			if idx < 0 {
				continue
			}
			period := strings.TrimSpace(field[idx+len(periodMarker):])
			period = strings.ReplaceAll(period, " through ", " - ")
			return period, true
		}
	}
	return "", false
}

// findOperatorName extracts the unit name from self-service exports,
// which carry it in the second field of an "Operator:" line.
func findOperatorName(lines []string) (string, bool) {
	for i, line := range lines {
		if i >= operatorScanLines {
			break
		}
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, operatorMarker) {
			continue
		}
		fields := splitLine(trimmed)
		if len(fields) >= 2 {
			if name := stripQuotes(fields[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}
