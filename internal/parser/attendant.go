package parser

import "github.com/lavepeguesucesso-png/Lave1/internal/models"

// AttendantParser handles exports from the staffed counter-sale
// terminals.
//
// Layout (0-based): store/unit name = 0, product label = 4, payment
// method = 5, amount = 8, date = 12, time = 13; rows need at least 14
// fields. Counter exports are sometimes concatenated with the header row
// repeated mid-file, so the date field must also carry a "/" before the
// row is considered data.
//
// Example row:
//
//	LAVANDERIA CENTRO,2,ANA,Serviços,SECA - 09,DINHEIRO,1,"R$ 18,00","R$ 18,00",,,"N-1092",14/07/2024,10:02:11
type AttendantParser struct{}

var attendantColumns = columnMap{
	unitName:           0,
	machine:            4,
	payment:            5,
	amount:             8,
	date:               12,
	time:               13,
	minFields:          14,
	dateNeedsSeparator: true,
	headerLabel:        "Store Name",
}

func (p *AttendantParser) FormatName() string {
	return "Balcão"
}

func (p *AttendantParser) Parse(lines []string) *models.ParseResult {
	result := &models.ParseResult{
		Metadata: models.Metadata{
			UnitName:   DefaultUnitName,
			Period:     DefaultPeriod,
			ReportType: models.ReportAttendant,
		},
		Transactions: []models.Transaction{},
	}

	if period, ok := extractPeriod(lines); ok {
		result.Metadata.Period = period
	}

	start, found := findHeaderRow(lines)
	if !found {
		result.Advisories = append(result.Advisories, models.Advisory{
			Code:    AdvisoryHeaderNotFound,
			Message: "Date/Time header row not found; scanning from the first line",
		})
	}

	transactions, unitName := mapRows(lines, start, attendantColumns)
	if unitName != "" {
		result.Metadata.UnitName = unitName
	}
	result.Transactions = transactions
	return result
}
