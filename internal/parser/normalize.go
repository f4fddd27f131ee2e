package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// datePattern is the row-acceptance gate: only strict DD/MM/YYYY dates
// produce transactions. "1/1/2024" and "2024-01-01" are rejected.
var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseCurrency converts a report amount into a float64. Accepts plain
// decimals ("15.9"), comma decimals ("15,9") and Brazilian
// thousands-grouped notation ("R$ 1.234,56"). Malformed input yields 0,
// never an error: partial reports with unparseable amounts are still
// valuable for cycle-count analytics.
func ParseCurrency(raw string) float64 {
	s := stripQuotes(raw)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "\u00a0", "") // non-breaking space
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		// "1.234,56": dot groups thousands, comma is the decimal point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// Cycle markers found on machine labels ("4 - LAVA - 04", "SECA - 09").
const (
	washMarker = "lava"
	dryMarker  = "seca"
)

// DetermineCycleType classifies a machine/product label. The wash check
// runs first, so a label naming both markers ("LAVA E SECA - 02") counts
// as WASH; this order must not change.
func DetermineCycleType(label string) models.CycleType {
	lower := strings.ToLower(label)
	if strings.Contains(lower, washMarker) {
		return models.CycleWash
	}
	if strings.Contains(lower, dryMarker) {
		return models.CycleDry
	}
	return models.CycleUnknown
}

// buildTimestamp combines a DD/MM/YYYY date and an HH:MM:SS time into a
// naive local timestamp. Missing time components default to zero; an
// absent time string means midnight. Out-of-range components such as
// "31/02/2024" passed the shape gate upstream and normalize per
// time.Date overflow, an accepted quirk of the source reports.
func buildTimestamp(rawDate, rawTime string) time.Time {
	dateParts := strings.Split(rawDate, "/")
	day, _ := strconv.Atoi(dateParts[0])
	month, _ := strconv.Atoi(dateParts[1])
	year, _ := strconv.Atoi(dateParts[2])

	hour, minute, second := 0, 0, 0
	if rawTime != "" {
		timeParts := strings.Split(rawTime, ":")
		if len(timeParts) > 0 {
			hour, _ = strconv.Atoi(timeParts[0])
		}
		if len(timeParts) > 1 {
			minute, _ = strconv.Atoi(timeParts[1])
		}
		if len(timeParts) > 2 {
			second, _ = strconv.Atoi(timeParts[2])
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
}
