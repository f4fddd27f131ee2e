package parser

import (
	"fmt"
	"strings"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// columnMap declares where a format keeps each field, so adding a third
// source format is a data change rather than a code change. Indexes are
// 0-based.
type columnMap struct {
	unitName int // -1 when the format has no unit-name column
	machine  int
	payment  int
	amount   int
	date     int
	time     int
	// minFields rejects rows with fewer fields than the highest
	// referenced index needs.
	minFields int
	// dateNeedsSeparator rejects rows whose date field carries no "/",
	// which filters stray repeated header rows out of concatenated
	// exports.
	dateNeedsSeparator bool
	// headerLabel is the literal first-column header text, which must
	// never be captured as a unit name.
	headerLabel string
}

// mapRows extracts transactions from every line at or after start. A row
// failing any gate is dropped silently and mapping continues; the mapper
// never fails the document. For formats whose first column carries the
// unit name, the first captured value is returned alongside the
// transactions.
func mapRows(lines []string, start int, cm columnMap) ([]models.Transaction, string) {
	transactions := []models.Transaction{}
	unitName := ""

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isDelimitersOnly(line) {
			continue
		}
		if strings.HasPrefix(line, "Total") {
			continue // summary footer
		}

		fields := splitLine(line)
		if len(fields) < cm.minFields {
			continue
		}

		if cm.unitName >= 0 && unitName == "" {
			candidate := stripQuotes(fields[cm.unitName])
			if candidate != "" && candidate != cm.headerLabel {
				unitName = candidate
			}
		}

		if cm.dateNeedsSeparator && !strings.Contains(fields[cm.date], "/") {
			continue
		}
		rawDate := stripQuotes(fields[cm.date])
		if !datePattern.MatchString(rawDate) {
			continue
		}

		rawTime := stripQuotes(fields[cm.time])
		machine := stripQuotes(fields[cm.machine])
		ts := buildTimestamp(rawDate, rawTime)

		transactions = append(transactions, models.Transaction{
			ID:            fmt.Sprintf("%d-%s-%s-%s", i, rawDate, rawTime, machine),
			Timestamp:     ts,
			RawDate:       rawDate,
			RawTime:       rawTime,
			ProductLabel:  machine,
			CycleType:     DetermineCycleType(machine),
			Amount:        ParseCurrency(fields[cm.amount]),
			PaymentMethod: stripQuotes(fields[cm.payment]),
			Machine:       machine,
			DayOfWeek:     int(ts.Weekday()),
		})
	}

	return transactions, unitName
}
