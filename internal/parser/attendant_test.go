package parser

import (
	"strings"
	"testing"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

func attendantDocument() []string {
	return []string{
		`"Sales from 01/07/2024 through 31/07/2024",,,,,,,,,,,,,`,
		attendantHeader,
		`LAVANDERIA CENTRO,2,ANA,Serviços,"10 - LAVA - 10",DINHEIRO,1,"R$ 18,00","R$ 18,00",,,N-1092,14/07/2024,10:02:11`,
		// truncated row, 13 fields
		`LAVANDERIA CENTRO,2,ANA,Serviços,SECA - 03,PIX,1,"R$ 20,00","R$ 20,00",,,N-1093,15/07/2024`,
		// concatenated export repeats the header mid-file
		attendantHeader,
		`LAVANDERIA CENTRO,1,BRUNO,Serviços,SECA - 03,PIX,1,"R$ 20,00","R$ 20,00",,,N-1094,15/07/2024,11:45:09`,
		`Total,,,,,,,,"R$ 38,00",,,,,`,
	}
}

func TestAttendantParse(t *testing.T) {
	result := (&AttendantParser{}).Parse(attendantDocument())

	if result.Metadata.ReportType != models.ReportAttendant {
		t.Errorf("report type: got %q, want ATTENDANT", result.Metadata.ReportType)
	}
	if result.Metadata.UnitName != "LAVANDERIA CENTRO" {
		t.Errorf("unit name: got %q, want %q", result.Metadata.UnitName, "LAVANDERIA CENTRO")
	}
	if result.Metadata.Period != "01/07/2024 - 31/07/2024" {
		t.Errorf("period: got %q", result.Metadata.Period)
	}
	if len(result.Advisories) != 0 {
		t.Errorf("advisories: got %#v, want none", result.Advisories)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(result.Transactions))
	}

	first := result.Transactions[0]
	if first.Machine != "10 - LAVA - 10" {
		t.Errorf("machine: got %q", first.Machine)
	}
	if first.CycleType != models.CycleWash {
		t.Errorf("cycle: got %q, want WASH", first.CycleType)
	}
	if first.Amount != 18.00 {
		t.Errorf("amount: got %f, want 18.00", first.Amount)
	}
	if first.PaymentMethod != "DINHEIRO" {
		t.Errorf("payment: got %q, want DINHEIRO", first.PaymentMethod)
	}
	if first.DayOfWeek != 0 {
		t.Errorf("day of week: got %d, want 0 (Sunday)", first.DayOfWeek)
	}

	second := result.Transactions[1]
	if second.CycleType != models.CycleDry || second.Amount != 20.00 {
		t.Errorf("second row: got cycle=%q amount=%f", second.CycleType, second.Amount)
	}
	if second.RawDate != "15/07/2024" || second.RawTime != "11:45:09" {
		t.Errorf("second row date/time: got %q %q", second.RawDate, second.RawTime)
	}
}

func TestAttendantHeaderNeverBecomesUnitName(t *testing.T) {
	doc := []string{
		attendantHeader,
		// Repeated header precedes any data row.
		attendantHeader,
		`LAVANDERIA NORTE,1,CLARA,Serviços,LAVA - 01,PIX,1,"R$ 15,00","R$ 15,00",,,N-2001,15/07/2024,09:00:00`,
	}

	result := (&AttendantParser{}).Parse(doc)
	if result.Metadata.UnitName != "LAVANDERIA NORTE" {
		t.Errorf("unit name: got %q, want LAVANDERIA NORTE", result.Metadata.UnitName)
	}
	if len(result.Transactions) != 1 {
		t.Errorf("transactions: got %d, want 1", len(result.Transactions))
	}
}

func TestAttendantNoDataRows(t *testing.T) {
	result := (&AttendantParser{}).Parse([]string{attendantHeader})

	if result.Metadata.UnitName != DefaultUnitName {
		t.Errorf("unit name: got %q, want sentinel", result.Metadata.UnitName)
	}
	if result.Metadata.Period != DefaultPeriod {
		t.Errorf("period: got %q, want sentinel", result.Metadata.Period)
	}
	if result.Transactions == nil || len(result.Transactions) != 0 {
		t.Errorf("transactions: got %#v, want empty slice", result.Transactions)
	}
}

func TestAttendantEndToEnd(t *testing.T) {
	result := ParseDocument(strings.Join(attendantDocument(), "\n"))
	if result.Metadata.ReportType != models.ReportAttendant {
		t.Fatalf("detected type: got %q", result.Metadata.ReportType)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("transactions: got %d, want 2", len(result.Transactions))
	}
}
