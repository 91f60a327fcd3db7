// ABOUTME: Tests for formatting helpers and derived business rules
// ABOUTME: Covers the edge cases around absent dates and amounts

package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339", "2024-03-05T10:30:00Z", "05.03.2024"},
		{"date only", "2024-03-05", "05.03.2024"},
		{"leading zeros", "2024-01-02", "02.01.2024"},
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.input); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateTime(t *testing.T) {
	got := DateTime("2024-03-05T09:05:00Z")
	if got != "05.03.2024 09:05" {
		t.Errorf("DateTime = %q, want 05.03.2024 09:05", got)
	}
	if DateTime("") != "" {
		t.Error("expected empty output for empty input")
	}
}

func TestCurrency(t *testing.T) {
	amount := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		input *float64
		want  string
	}{
		{"nil is zero", nil, "0,00 €"},
		{"integer", amount(13), "13,00 €"},
		{"cents", amount(2.5), "2,50 €"},
		{"grouping", amount(1234.56), "1.234,56 €"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.input); got != tt.want {
				t.Errorf("Currency = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCustomerName(t *testing.T) {
	tests := []struct {
		name                      string
		firma, vorname, nachname string
		want                      string
	}{
		{"company wins", "Acme", "A", "B", "Acme"},
		{"person", "", "A", "B", "A B"},
		{"first only", "", "A", "", "A"},
		{"last only", "", "", "B", "B"},
		{"all empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CustomerName(tt.firma, tt.vorname, tt.nachname); got != tt.want {
				t.Errorf("CustomerName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name               string
		strasse, plz, ort string
		want               string
	}{
		{"full", "Main 1", "12345", "Town", "Main 1, 12345 Town"},
		{"plz only", "", "12345", "", "12345"},
		{"ort only", "", "", "Town", "Town"},
		{"street only", "Main 1", "", "", "Main 1"},
		{"street and city", "Main 1", "", "Town", "Main 1, Town"},
		{"empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Address(tt.strasse, tt.plz, tt.ort); got != tt.want {
				t.Errorf("Address = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"active", ColorActive},
		{"ausgeliehen", ColorActive},
		{"returned", ColorReturned},
		{"zurückgegeben", ColorReturned},
		{"overdue", ColorOverdue},
		{"überfällig", ColorOverdue},
		{"whatever", ColorNeutral},
		{"", ColorNeutral},
	}
	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"active", "Ausgeliehen"},
		{"returned", "Zurückgegeben"},
		{"overdue", "Überfällig"},
		{"unknown-status", "unknown-status"},
	}
	for _, tt := range tests {
		if got := StatusText(tt.status); got != tt.want {
			t.Errorf("StatusText(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	if !isOverdueAt("2024-06-14", now) {
		t.Error("past date should be overdue")
	}
	if isOverdueAt("2024-06-16", now) {
		t.Error("future date should not be overdue")
	}
	if isOverdueAt("", now) {
		t.Error("absent date should not be overdue")
	}
}

func TestDaysUntilReturn(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	days, ok := daysUntilReturnAt("2024-06-18", now)
	if !ok || days != 3 {
		t.Errorf("expected 3 days, got %d (ok=%v)", days, ok)
	}

	days, ok = daysUntilReturnAt("2024-06-13", now)
	if !ok || days != -2 {
		t.Errorf("expected -2 days, got %d (ok=%v)", days, ok)
	}

	if _, ok := daysUntilReturnAt("", now); ok {
		t.Error("absent date must report no value, not zero days")
	}
}

func TestRentalDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"three days", "2024-06-10", "2024-06-13", 3},
		{"partial day rounds up", "2024-06-10T08:00:00Z", "2024-06-11T09:00:00Z", 2},
		{"reversed dates", "2024-06-13", "2024-06-10", 3},
		{"missing start", "", "2024-06-13", 0},
		{"missing end", "2024-06-10", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RentalDuration(tt.start, tt.end); got != tt.want {
				t.Errorf("RentalDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	items := []PriceItem{
		{Menge: 2, PreisProEinheit: 5},
		{Menge: 1, PreisProEinheit: 3},
	}
	if got := TotalPrice(items); got != 13 {
		t.Errorf("TotalPrice = %v, want 13", got)
	}
	if got := TotalPrice(nil); got != 0 {
		t.Errorf("TotalPrice(nil) = %v, want 0", got)
	}
	if got := TotalPrice([]PriceItem{{Menge: 4}}); got != 0 {
		t.Errorf("absent unit price should count as zero, got %v", got)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+49 170 123-456", "+49170123456"},
		{"(0170) 123 456", "0170123456"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Phone(tt.input); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.de", "hans.maier@brauerei-kirschenholz.de"}
	invalid := []string{"", "nope", "a@b", "a b@c.de", "a@b c.de"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
