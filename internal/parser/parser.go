// Package parser normalizes the two laundry point-of-sale CSV report
// formats into a single transaction model. Parsing is heuristic and
// signature-based: the reports carry no format tag, so the literal column
// names of the header row are the only reliable discriminator.
package parser

import (
	"fmt"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// maxScanLines bounds every line scan so pathological inputs stay cheap.
const maxScanLines = 5000

// Sentinel metadata values used when a report does not carry the field.
const (
	DefaultUnitName = "Unidade não identificada"
	DefaultPeriod   = "Período não identificado"
)

// Advisory codes attached to ParseResult.Advisories.
const (
	AdvisoryUnknownFormat  = "unknown_format"
	AdvisoryHeaderNotFound = "header_not_found"
	AdvisorySlotMismatch   = "slot_mismatch"
)

// Header-signature substrings. Each format is identified by the
// conjunction of three column names that only occur together in that
// format's header row; the two sets are mutually exclusive in
// legitimate exports.
var (
	selfServiceSignature = []string{"Trans ID", "Machine", "Payment Type"}
	attendantSignature   = []string{"Store Name", "Clerk", "Product"}
)

// Parser normalizes the lines of one report document. Implementations
// never fail: malformed rows are dropped and document-level problems are
// reported as advisories on the result.
type Parser interface {
	Parse(lines []string) *models.ParseResult
	// FormatName returns the human-readable source terminal name.
	FormatName() string
}

// New returns the parser for the given report type.
func New(reportType models.ReportType) (Parser, error) {
	switch reportType {
	case models.ReportSelfService:
		return &SelfServiceParser{}, nil
	case models.ReportAttendant:
		return &AttendantParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported report type: %q", reportType)
	}
}

// Detect classifies a document by scanning the line prefix for a known
// header signature. Unrelated lines before the signature never change
// the outcome; no match means UNKNOWN.
func Detect(lines []string) models.ReportType {
	for i, line := range lines {
		if i >= maxScanLines {
			break
		}
		if containsAll(line, selfServiceSignature) {
			return models.ReportSelfService
		}
		if containsAll(line, attendantSignature) {
			return models.ReportAttendant
		}
	}
	return models.ReportUnknown
}

// ParseDocument is the top-level entry point: split the raw text into
// lines, detect the format and hand the lines to its parser. The call is
// pure with respect to the input string. Unknown-format input yields a
// structurally valid result with best-effort metadata and an empty
// transaction list, never an error.
func ParseDocument(text string) *models.ParseResult {
	lines := splitDocument(text)

	p, err := New(Detect(lines))
	if err != nil {
		result := &models.ParseResult{
			Metadata: models.Metadata{
				UnitName:   DefaultUnitName,
				Period:     DefaultPeriod,
				ReportType: models.ReportUnknown,
			},
			Transactions: []models.Transaction{},
		}
		if period, ok := extractPeriod(lines); ok {
			result.Metadata.Period = period
		}
		result.Advisories = append(result.Advisories, models.Advisory{
			Code:    AdvisoryUnknownFormat,
			Message: "no known report signature found; transactions left empty",
		})
		return result
	}

	return p.Parse(lines)
}
