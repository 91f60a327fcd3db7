// ABOUTME: Rental detail screen with duration, overdue badge, and return flow
// ABOUTME: Recording a return asks for confirmation including the deposit question

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/format"
	"github.com/holgerweigert/verleih/internal/tui/styles"
	"github.com/holgerweigert/verleih/internal/tui/widgets"
)

// rentalDetailScreen shows one rental and drives the return flow
type rentalDetailScreen struct {
	rental          *api.Rental
	confirming      bool
	depositReturned bool
}

func newRentalDetailScreen(rental *api.Rental) *rentalDetailScreen {
	return &rentalDetailScreen{rental: rental, depositReturned: true}
}

// updateRentalDetail handles key input on the detail screen
func (a *App) updateRentalDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := a.detail
	if d == nil {
		return a, nil
	}

	if d.confirming {
		switch msg.String() {
		case "j", "y", "enter":
			d.confirming = false
			a.loading = true
			return a, a.doReturn(d.rental.ID, api.ReturnRequest{
				DepositReturned: d.depositReturned,
			})
		case "k":
			d.depositReturned = !d.depositReturned
		case "n", "esc":
			d.confirming = false
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.screen = ScreenRentals
		return a, nil
	case "z":
		if d.rental.Classify() != api.StatusReturned {
			d.confirming = true
		}
		return a, nil
	case "r":
		a.loading = true
		return a, a.loadRental(d.rental.ID)
	}
	return a, nil
}

func (d *rentalDetailScreen) View() string {
	r := d.rental
	status := string(r.Classify())

	s := styles.Title.Render(fmt.Sprintf("Verleihung #%d", r.ID)) + "  " + widgets.StatusBadge(status) + "\n\n"
	s += fmt.Sprintf("Kunde:   %s\n", styles.ValueStyle.Render(r.DisplayCustomer()))
	s += fmt.Sprintf("Produkt: %s\n\n", styles.ValueStyle.Render(r.DisplayProduct()))

	s += fmt.Sprintf("Ausgeliehen am: %s\n", format.Date(r.RentalDate))
	if r.DueDate != "" {
		s += fmt.Sprintf("Rückgabe bis:   %s", format.Date(r.DueDate))
		if days, ok := format.DaysUntilReturn(r.DueDate); ok && r.Classify() == api.StatusActive {
			s += fmt.Sprintf(" (%d Tage)", days)
		}
		s += "\n"
	}
	if r.ReturnDate != "" {
		s += fmt.Sprintf("Zurückgegeben:  %s\n", format.Date(r.ReturnDate))
	}
	s += fmt.Sprintf("Dauer:          %d Tage\n\n", r.Duration())

	s += fmt.Sprintf("Mietpreis: %s\n", format.Currency(r.RentalPrice))
	if r.Deposit() > 0 {
		s += fmt.Sprintf("Kaution:   %s\n", format.Currency(r.DepositAmount))
	}
	s += fmt.Sprintf("Gesamt:    %s\n", styles.ValueStyle.Render(money(r.Total())))
	if r.Notes != "" {
		s += "\nNotizen: " + r.Notes + "\n"
	}

	if d.confirming {
		deposit := "ja"
		if !d.depositReturned {
			deposit = "nein"
		}
		s += "\n" + styles.ActiveCard.Render(
			fmt.Sprintf("Rückgabe erfassen?\nKaution zurückgezahlt: %s\n\nj: bestätigen • k: Kaution umschalten • n: abbrechen", deposit))
	} else if r.Classify() != api.StatusReturned {
		s += styles.Help.Render("z: Rückgabe erfassen • r: neu laden • esc: zurück • q: beenden")
	} else {
		s += styles.Help.Render("r: neu laden • esc: zurück • q: beenden")
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
