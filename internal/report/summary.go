// Package report aggregates normalized transactions for the dashboard
// views. It reads the fields the parser already normalized (Amount,
// CycleType, Timestamp are authoritative) and never re-parses raw
// strings.
package report

import (
	"sort"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

// MachineTotal is one row of the per-machine ranking table.
type MachineTotal struct {
	Machine string  `json:"machine"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// PaymentTotal breaks revenue down by payment method.
type PaymentTotal struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DayOfWeekTotal buckets transactions by weekday, index 0 = Sunday.
type DayOfWeekTotal struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DateTotal is one point of the per-date revenue series, keyed by the
// raw source date so grouping cannot drift through locale formatting.
type DateTotal struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Summary holds every aggregate the comparative and financial views
// display.
type Summary struct {
	TransactionCount int     `json:"transactionCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AverageTicket    float64 `json:"averageTicket"`

	WashCount      int     `json:"washCount"`
	DryCount       int     `json:"dryCount"`
	UnknownCount   int     `json:"unknownCount"`
	WashRevenue    float64 `json:"washRevenue"`
	DryRevenue     float64 `json:"dryRevenue"`
	UnknownRevenue float64 `json:"unknownRevenue"`

	ByMachine       []MachineTotal    `json:"byMachine"`
	ByPaymentMethod []PaymentTotal    `json:"byPaymentMethod"`
	ByDayOfWeek     [7]DayOfWeekTotal `json:"byDayOfWeek"`
	ByDate          []DateTotal       `json:"byDate"`
}

// Summarize computes the display aggregates for one transaction list.
func Summarize(transactions []models.Transaction) *Summary {
	s := &Summary{
		ByMachine:       []MachineTotal{},
		ByPaymentMethod: []PaymentTotal{},
		ByDate:          []DateTotal{},
	}

	machines := map[string]*MachineTotal{}
	payments := map[string]*PaymentTotal{}
	dates := map[string]*DateTotal{}
	var dateOrder []string

	for _, txn := range transactions {
		s.TransactionCount++
		s.TotalRevenue += txn.Amount

		switch txn.CycleType {
		case models.CycleWash:
			s.WashCount++
			s.WashRevenue += txn.Amount
		case models.CycleDry:
			s.DryCount++
			s.DryRevenue += txn.Amount
		default:
			s.UnknownCount++
			s.UnknownRevenue += txn.Amount
		}

		if m := machines[txn.Machine]; m != nil {
			m.Count++
			m.Revenue += txn.Amount
		} else {
			machines[txn.Machine] = &MachineTotal{Machine: txn.Machine, Count: 1, Revenue: txn.Amount}
		}

		if p := payments[txn.PaymentMethod]; p != nil {
			p.Count++
			p.Revenue += txn.Amount
		} else {
			payments[txn.PaymentMethod] = &PaymentTotal{Method: txn.PaymentMethod, Count: 1, Revenue: txn.Amount}
		}

		if txn.DayOfWeek >= 0 && txn.DayOfWeek < 7 {
			s.ByDayOfWeek[txn.DayOfWeek].Count++
			s.ByDayOfWeek[txn.DayOfWeek].Revenue += txn.Amount
		}

		if d := dates[txn.RawDate]; d != nil {
			d.Count++
			d.Revenue += txn.Amount
		} else {
			dates[txn.RawDate] = &DateTotal{Date: txn.RawDate, Count: 1, Revenue: txn.Amount}
			dateOrder = append(dateOrder, txn.RawDate)
		}
	}

	if s.TransactionCount > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.TransactionCount)
	}

	for _, m := range machines {
		s.ByMachine = append(s.ByMachine, *m)
	}
	// Ranking order: revenue descending, name as tiebreaker.
	sort.Slice(s.ByMachine, func(i, j int) bool {
		if s.ByMachine[i].Revenue != s.ByMachine[j].Revenue {
			return s.ByMachine[i].Revenue > s.ByMachine[j].Revenue
		}
		return s.ByMachine[i].Machine < s.ByMachine[j].Machine
	})

	for _, p := range payments {
		s.ByPaymentMethod = append(s.ByPaymentMethod, *p)
	}
	sort.Slice(s.ByPaymentMethod, func(i, j int) bool {
		if s.ByPaymentMethod[i].Revenue != s.ByPaymentMethod[j].Revenue {
			return s.ByPaymentMethod[i].Revenue > s.ByPaymentMethod[j].Revenue
		}
		return s.ByPaymentMethod[i].Method < s.ByPaymentMethod[j].Method
	})

	// Per-date series keeps source order, which the reports already emit
	// chronologically.
	for _, date := range dateOrder {
		s.ByDate = append(s.ByDate, *dates[date])
	}

	return s
}
