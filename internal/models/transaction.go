package models

import "time"

// ReportType identifies which point-of-sale system produced a report.
type ReportType string

const (
	ReportSelfService ReportType = "SELF_SERVICE"
	ReportAttendant   ReportType = "ATTENDANT"
	ReportUnknown     ReportType = "UNKNOWN"
)

// CycleType classifies a laundry transaction by the machine that ran it.
type CycleType string

const (
	CycleWash    CycleType = "WASH"
	CycleDry     CycleType = "DRY"
	CycleUnknown CycleType = "UNKNOWN"
)

// Transaction is one normalized sale from either report format.
// Values are immutable after the parse call that produced them.
type Transaction struct {
	// ID is derived from the source line index plus the raw date, time and
	// machine label. Stable across re-parses of the same file, but not a
	// cross-file key.
	ID string `json:"id"`
	// Timestamp is a naive local wall-clock value; the source reports carry
	// no timezone information.
	Timestamp     time.Time `json:"timestamp"`
	RawDate       string    `json:"rawDate"`
	RawTime       string    `json:"rawTime"`
	ProductLabel  string    `json:"productLabel"`
	CycleType     CycleType `json:"cycleType"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	// Machine mirrors ProductLabel; ranking tables downstream key by it.
	Machine   string `json:"machine"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday
}

// Metadata holds report-level fields extracted alongside the transactions.
type Metadata struct {
	UnitName   string     `json:"unitName"`
	Period     string     `json:"period"`
	ReportType ReportType `json:"reportType"`
}

// Advisory is a non-fatal diagnostic emitted during parsing. Advisories
// never block processing; they replace ad-hoc warning output so callers
// can decide what to surface.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseResult is the full output of one parse call.
type ParseResult struct {
	Metadata     Metadata      `json:"metadata"`
	Transactions []Transaction `json:"transactions"`
	Advisories   []Advisory    `json:"advisories,omitempty"`
}
