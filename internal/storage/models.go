package storage

import (
	"time"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// ParseRun is one stored upload: report metadata plus totals, with the
// normalized transactions attached.
type ParseRun struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	FileName         string    `json:"fileName"`
	UnitName         string    `json:"unitName"`
	Period           string    `json:"period"`
	ReportType       string    `json:"reportType"`
	TransactionCount int       `json:"transactionCount"`
	TotalRevenue     float64   `json:"totalRevenue"`

	Transactions []StoredTransaction `gorm:"foreignKey:RunID" json:"transactions,omitempty"`
}

// StoredTransaction is the persisted form of models.Transaction. The
// source-derived id is kept separately because it is only unique within
// its own run.
type StoredTransaction struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	RunID         string    `gorm:"index" json:"-"`
	SourceID      string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	RawDate       string    `json:"rawDate"`
	RawTime       string    `json:"rawTime"`
	ProductLabel  string    `json:"productLabel"`
	CycleType     string    `json:"cycleType"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Machine       string    `json:"machine"`
	DayOfWeek     int       `json:"dayOfWeek"`
}

// NewParseRun builds a storable run from a parse result.
func NewParseRun(id, fileName string, result *models.ParseResult) *ParseRun {
	run := &ParseRun{
		ID:               id,
		FileName:         fileName,
		UnitName:         result.Metadata.UnitName,
		Period:           result.Metadata.Period,
		ReportType:       string(result.Metadata.ReportType),
		TransactionCount: len(result.Transactions),
	}
	for _, txn := range result.Transactions {
		run.TotalRevenue += txn.Amount
		run.Transactions = append(run.Transactions, StoredTransaction{
			SourceID:      txn.ID,
			Timestamp:     txn.Timestamp,
			RawDate:       txn.RawDate,
			RawTime:       txn.RawTime,
			ProductLabel:  txn.ProductLabel,
			CycleType:     string(txn.CycleType),
			Amount:        txn.Amount,
			PaymentMethod: txn.PaymentMethod,
			Machine:       txn.Machine,
			DayOfWeek:     txn.DayOfWeek,
		})
	}
	return run
}

// Normalized converts the stored transactions back into the parser's
// transaction model for the aggregation views.
func (r *ParseRun) Normalized() []models.Transaction {
	transactions := make([]models.Transaction, 0, len(r.Transactions))
	for _, st := range r.Transactions {
		transactions = append(transactions, models.Transaction{
			ID:            st.SourceID,
			Timestamp:     st.Timestamp,
			RawDate:       st.RawDate,
			RawTime:       st.RawTime,
			ProductLabel:  st.ProductLabel,
			CycleType:     models.CycleType(st.CycleType),
			Amount:        st.Amount,
			PaymentMethod: st.PaymentMethod,
			Machine:       st.Machine,
			DayOfWeek:     st.DayOfWeek,
		})
	}
	return transactions
}
