// ABOUTME: Display formatting and derived business rules for rental data
// ABOUTME: Pure functions, no I/O; dates arrive as wire strings from the API

package format

import (
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// dateLayouts are the wire formats the backend is known to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate tries the known wire layouts in order.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders a wire date as DD.MM.YYYY. Empty or unparseable input
// yields the empty string.
func Date(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return t.Format("02.01.2006")
}

// DateTime renders a wire date as DD.MM.YYYY HH:MM.
func DateTime(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}

// german renders numbers with German grouping and decimal separators.
var german = message.NewPrinter(language.German)

// Currency renders an amount as German-locale EUR, e.g. "1.234,56 €".
// A nil amount renders as zero.
func Currency(amount *float64) string {
	var v float64
	if amount != nil {
		v = *amount
	}
	return german.Sprintf("%v €", number.Decimal(v, number.Scale(2)))
}

// CustomerName resolves a display name: company if present, otherwise
// "first last" with surrounding whitespace trimmed.
func CustomerName(firma, vorname, nachname string) string {
	if firma != "" {
		return firma
	}
	return strings.TrimSpace(vorname + " " + nachname)
}

// Address joins street and "plz ort", dropping absent parts.
// "Main 1, 12345 Town"; with only a postal code, "12345".
func Address(strasse, plz, ort string) string {
	var parts []string
	if strasse != "" {
		parts = append(parts, strasse)
	}
	switch {
	case plz != "" && ort != "":
		parts = append(parts, plz+" "+ort)
	case plz != "":
		parts = append(parts, plz)
	case ort != "":
		parts = append(parts, ort)
	}
	return strings.Join(parts, ", ")
}

// Status badge colors, matching the app theme.
const (
	ColorActive   = "#FF9800" // orange
	ColorReturned = "#4CAF50" // green
	ColorOverdue  = "#F44336" // red
	ColorNeutral  = "#9E9E9E" // gray
)

// StatusColor maps a rental status (or its German synonym) to a badge
// color. Unknown statuses get neutral gray.
func StatusColor(status string) string {
	switch status {
	case "active", "ausgeliehen":
		return ColorActive
	case "returned", "zurückgegeben":
		return ColorReturned
	case "overdue", "überfällig":
		return ColorOverdue
	default:
		return ColorNeutral
	}
}

// StatusText maps a rental status to its German display label.
// Unknown statuses are echoed unchanged.
func StatusText(status string) string {
	switch status {
	case "active":
		return "Ausgeliehen"
	case "returned":
		return "Zurückgegeben"
	case "overdue":
		return "Überfällig"
	default:
		return status
	}
}

// IsOverdue reports whether a due date lies strictly in the past.
// An absent or unparseable date is never overdue.
func IsOverdue(returnDate string) bool {
	return isOverdueAt(returnDate, time.Now())
}

func isOverdueAt(returnDate string, now time.Time) bool {
	t, ok := parseDate(returnDate)
	if !ok {
		return false
	}
	return t.Before(now)
}

// Phone strips everything but digits and a leading plus sign.
func Phone(phone string) string {
	return phoneClean.ReplaceAllString(phone, "")
}

var phoneClean = regexp.MustCompile(`[^\d+]`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address has a plausible user@host.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const dayMillis = 24 * 60 * 60 * 1000

// DaysUntilReturn computes calendar days from now until the due date,
// rounding partial days up. Negative when the date has passed.
// The second return value is false when no due date is set.
func DaysUntilReturn(returnDate string) (int, bool) {
	return daysUntilReturnAt(returnDate, time.Now())
}

func daysUntilReturnAt(returnDate string, now time.Time) (int, bool) {
	t, ok := parseDate(returnDate)
	if !ok {
		return 0, false
	}
	diff := float64(t.Sub(now).Milliseconds())
	return int(math.Ceil(diff / dayMillis)), true
}

// RentalDuration computes the rental length in days between two dates,
// rounding partial days up. Either date absent yields 0.
func RentalDuration(startDate, endDate string) int {
	start, ok := parseDate(startDate)
	if !ok {
		return 0
	}
	end, ok := parseDate(endDate)
	if !ok {
		return 0
	}
	diff := math.Abs(float64(end.Sub(start).Milliseconds()))
	return int(math.Ceil(diff / dayMillis))
}

// PriceItem is a single line of a priced position list.
type PriceItem struct {
	Menge           float64 `json:"menge"`
	PreisProEinheit float64 `json:"preis_pro_einheit"`
}

// TotalPrice sums quantity times unit price over all items.
// A nil slice yields 0.
func TotalPrice(items []PriceItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Menge * item.PreisProEinheit
	}
	return total
}
