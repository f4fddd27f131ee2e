package parser

import (
	"testing"
	"time"

	"github.com/lavepeguesucesso-png/Lave1/internal/models"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"15,9", 15.9},
		{"15.9", 15.9},
		{"", 0},
		{"garbage", 0},
		{`"R$ 12,00"`, 12.00},
		{"R$ 0,00", 0},
		{"1.234.567,89", 1234567.89},
		{" R$ 7,50 ", 7.50},
		{"-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCurrency(tt.input)
			if got != tt.expected {
				t.Errorf("ParseCurrency(%q) = %f, want %f", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetermineCycleType(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CycleType
	}{
		{"4 - LAVA - 04", models.CycleWash},
		{"LAVA E SECA - 02", models.CycleWash}, // wash check runs first
		{"SECA - 09", models.CycleDry},
		{"lava 10kg", models.CycleWash},
		{"Secadora 3", models.CycleDry},
		{"", models.CycleUnknown},
		{"PRODUTO AVULSO", models.CycleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DetermineCycleType(tt.input)
			if got != tt.expected {
				t.Errorf("DetermineCycleType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDatePattern(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"14/07/2024", true},
		{"01/01/2024", true},
		{"31/02/2024", true}, // shape gate only; calendar overflow handled later
		{"1/1/2024", false},
		{"2024-01-01", false},
		{"14/07/24", false},
		{"14/07/2024 ", false},
		{"", false},
		{"Date", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := datePattern.MatchString(tt.input)
			if got != tt.expected {
				t.Errorf("datePattern.MatchString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		rawDate string
		rawTime string
		want    time.Time
	}{
		{
			name:    "full date and time",
			rawDate: "14/07/2024",
			rawTime: "09:12:44",
			want:    time.Date(2024, time.July, 14, 9, 12, 44, 0, time.Local),
		},
		{
			name:    "absent time defaults to midnight",
			rawDate: "15/07/2024",
			rawTime: "",
			want:    time.Date(2024, time.July, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "partial time fills missing components with zero",
			rawDate: "15/07/2024",
			rawTime: "08:30",
			want:    time.Date(2024, time.July, 15, 8, 30, 0, 0, time.Local),
		},
		{
			name:    "calendar overflow normalizes per time.Date",
			rawDate: "31/02/2024",
			rawTime: "",
			want:    time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTimestamp(tt.rawDate, tt.rawTime)
			if !got.Equal(tt.want) {
				t.Errorf("buildTimestamp(%q, %q) = %v, want %v", tt.rawDate, tt.rawTime, got, tt.want)
			}
		})
	}
}

func TestBuildTimestampWeekday(t *testing.T) {
	// 14/07/2024 was a Sunday; weekday indexing starts there.
	ts := buildTimestamp("14/07/2024", "09:00:00")
	if int(ts.Weekday()) != 0 {
		t.Errorf("weekday of 14/07/2024: got %d, want 0 (Sunday)", int(ts.Weekday()))
	}

	ts = buildTimestamp("20/07/2024", "")
	if int(ts.Weekday()) != 6 {
		t.Errorf("weekday of 20/07/2024: got %d, want 6 (Saturday)", int(ts.Weekday()))
	}
}
