package report

import (
	"math"
	"testing"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Machine: "LAVA - 01", CycleType: models.CycleWash, Amount: 15.90, PaymentMethod: "CREDITO", DayOfWeek: 0, RawDate: "14/07/2024"},
		{Machine: "LAVA - 01", CycleType: models.CycleWash, Amount: 15.90, PaymentMethod: "PIX", DayOfWeek: 1, RawDate: "15/07/2024"},
		{Machine: "SECA - 03", CycleType: models.CycleDry, Amount: 18.00, PaymentMethod: "PIX", DayOfWeek: 1, RawDate: "15/07/2024"},
		{Machine: "AVULSO", CycleType: models.CycleUnknown, Amount: 5.00, PaymentMethod: "DINHEIRO", DayOfWeek: 6, RawDate: "20/07/2024"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTransactions())

	if s.TransactionCount != 4 {
		t.Errorf("count: got %d, want 4", s.TransactionCount)
	}
	if !approx(s.TotalRevenue, 54.80) {
		t.Errorf("total revenue: got %f, want 54.80", s.TotalRevenue)
	}
	if !approx(s.AverageTicket, 13.70) {
		t.Errorf("average ticket: got %f, want 13.70", s.AverageTicket)
	}

	if s.WashCount != 2 || !approx(s.WashRevenue, 31.80) {
		t.Errorf("wash: got %d / %f", s.WashCount, s.WashRevenue)
	}
	if s.DryCount != 1 || !approx(s.DryRevenue, 18.00) {
		t.Errorf("dry: got %d / %f", s.DryCount, s.DryRevenue)
	}
	if s.UnknownCount != 1 || !approx(s.UnknownRevenue, 5.00) {
		t.Errorf("unknown: got %d / %f", s.UnknownCount, s.UnknownRevenue)
	}
}

func TestSummarizeMachineRanking(t *testing.T) {
	s := Summarize(sampleTransactions())

	if len(s.ByMachine) != 3 {
		t.Fatalf("machines: got %d, want 3", len(s.ByMachine))
	}
	// Revenue descending.
	want := []string{"LAVA - 01", "SECA - 03", "AVULSO"}
	for i, name := range want {
		if s.ByMachine[i].Machine != name {
			t.Errorf("rank %d: got %q, want %q", i, s.ByMachine[i].Machine, name)
		}
	}
	if s.ByMachine[0].Count != 2 || !approx(s.ByMachine[0].Revenue, 31.80) {
		t.Errorf("top machine: got %d / %f", s.ByMachine[0].Count, s.ByMachine[0].Revenue)
	}
}

func TestSummarizeMachineTiebreaker(t *testing.T) {
	s := Summarize([]models.Transaction{
		{Machine: "SECA - 02", Amount: 10, CycleType: models.CycleDry},
		{Machine: "LAVA - 01", Amount: 10, CycleType: models.CycleWash},
	})

	if s.ByMachine[0].Machine != "LAVA - 01" || s.ByMachine[1].Machine != "SECA - 02" {
		t.Errorf("equal revenue should order by name: got %q, %q",
			s.ByMachine[0].Machine, s.ByMachine[1].Machine)
	}
}

func TestSummarizePaymentMethods(t *testing.T) {
	s := Summarize(sampleTransactions())

	if len(s.ByPaymentMethod) != 3 {
		t.Fatalf("payment methods: got %d, want 3", len(s.ByPaymentMethod))
	}
	if s.ByPaymentMethod[0].Method != "PIX" || s.ByPaymentMethod[0].Count != 2 {
		t.Errorf("top method: got %q / %d", s.ByPaymentMethod[0].Method, s.ByPaymentMethod[0].Count)
	}
	if !approx(s.ByPaymentMethod[0].Revenue, 33.90) {
		t.Errorf("top method revenue: got %f, want 33.90", s.ByPaymentMethod[0].Revenue)
	}
}

func TestSummarizeDayOfWeek(t *testing.T) {
	s := Summarize(sampleTransactions())

	if s.ByDayOfWeek[0].Count != 1 || !approx(s.ByDayOfWeek[0].Revenue, 15.90) {
		t.Errorf("sunday bucket: got %+v", s.ByDayOfWeek[0])
	}
	if s.ByDayOfWeek[1].Count != 2 || !approx(s.ByDayOfWeek[1].Revenue, 33.90) {
		t.Errorf("monday bucket: got %+v", s.ByDayOfWeek[1])
	}
	if s.ByDayOfWeek[6].Count != 1 {
		t.Errorf("saturday bucket: got %+v", s.ByDayOfWeek[6])
	}
	for _, d := range []int{2, 3, 4, 5} {
		if s.ByDayOfWeek[d].Count != 0 {
			t.Errorf("bucket %d should be empty: got %+v", d, s.ByDayOfWeek[d])
		}
	}
}

func TestSummarizeDateSeries(t *testing.T) {
	s := Summarize(sampleTransactions())

	if len(s.ByDate) != 3 {
		t.Fatalf("dates: got %d, want 3", len(s.ByDate))
	}
	// Source order, not lexicographic.
	want := []string{"14/07/2024", "15/07/2024", "20/07/2024"}
	for i, date := range want {
		if s.ByDate[i].Date != date {
			t.Errorf("date %d: got %q, want %q", i, s.ByDate[i].Date, date)
		}
	}
	if s.ByDate[1].Count != 2 || !approx(s.ByDate[1].Revenue, 33.90) {
		t.Errorf("15/07 point: got %+v", s.ByDate[1])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	if s.TransactionCount != 0 || s.TotalRevenue != 0 || s.AverageTicket != 0 {
		t.Errorf("empty summary: got %+v", s)
	}
	if s.ByMachine == nil || s.ByPaymentMethod == nil || s.ByDate == nil {
		t.Error("aggregate slices must be empty, not nil")
	}
}
