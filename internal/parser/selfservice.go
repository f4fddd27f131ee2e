package parser

import "github.com/lavepeguesucesso-png/Lave1/internal/models"

// SelfServiceParser handles exports from the unattended kiosk terminals.
//
// Layout (0-based): payment type = 4, machine label = 6, amount = 9,
// date = 10, time = 11; rows need at least 12 fields. The unit name sits
// on an "Operator:" preamble line, not in the data rows.
//
// Example row:
//
//	83214,"****1022",Sale,"R$ 12,00",CREDITO,Centro,"4 - LAVA - 04",Normal,,"R$ 15,90",14/07/2024,09:12:44
type SelfServiceParser struct{}

var selfServiceColumns = columnMap{
	unitName:  -1,
	machine:   6,
	payment:   4,
	amount:    9,
	date:      10,
	time:      11,
	minFields: 12,
}

func (p *SelfServiceParser) FormatName() string {
	return "Autoatendimento"
}

func (p *SelfServiceParser) Parse(lines []string) *models.ParseResult {
	result := &models.ParseResult{
		Metadata: models.Metadata{
			UnitName:   DefaultUnitName,
			Period:     DefaultPeriod,
			ReportType: models.ReportSelfService,
		},
		Transactions: []models.Transaction{},
	}

	if name, ok := findOperatorName(lines); ok {
		result.Metadata.UnitName = name
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

	result.Transactions, _ = mapRows(lines, start, selfServiceColumns)
	return result
}
