// ABOUTME: Rental list screen with status filter cycling
// ABOUTME: Mirrors the mobile rentals screen; enter opens the detail view

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

// rentalsScreen lists rentals for the current status filter
type rentalsScreen struct {
	rentals []api.Rental
	filter  api.RentalFilter
	cursor  int
}

func newRentalsScreen() *rentalsScreen {
	return &rentalsScreen{filter: api.FilterActive}
}

func (r *rentalsScreen) setRentals(rentals []api.Rental, filter api.RentalFilter) {
	r.rentals = rentals
	r.filter = filter
	if r.cursor >= len(rentals) {
		r.cursor = 0
	}
}

// nextFilter cycles active → returned → all
func nextFilter(f api.RentalFilter) api.RentalFilter {
	switch f {
	case api.FilterActive:
		return api.FilterReturned
	case api.FilterReturned:
		return api.FilterAll
	default:
		return api.FilterActive
	}
}

func filterLabel(f api.RentalFilter) string {
	switch f {
	case api.FilterReturned:
		return "Zurückgegeben"
	case api.FilterAll:
		return "Alle"
	default:
		return "Aktiv"
	}
}

// updateRentals handles key input on the rental list
func (a *App) updateRentals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := a.rentals
	if r == nil {
		return a, nil
	}
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.screen = ScreenHome
		return a, nil
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.rentals)-1 {
			r.cursor++
		}
	case "f":
		a.loading = true
		return a, a.loadRentals(nextFilter(r.filter))
	case "r":
		a.loading = true
		return a, a.loadRentals(r.filter)
	case "n":
		a.loading = true
		return a, a.loadNewRentalData()
	case "enter":
		if r.cursor < len(r.rentals) {
			a.loading = true
			return a, a.loadRental(r.rentals[r.cursor].ID)
		}
	}
	return a, nil
}

func (r *rentalsScreen) View() string {
	s := styles.Title.Render("Verleihungen") + "\n"
	s += styles.Subtitle.Render("Filter: "+filterLabel(r.filter)) + "\n"

	if len(r.rentals) == 0 {
		s += styles.StatLabel.Render("Keine Verleihungen gefunden") + "\n"
	}
	for i := range r.rentals {
		rental := &r.rentals[i]
		status := string(rental.Classify())
		line := fmt.Sprintf("%s %-25s %-25s %10s  %s",
			widgets.StatusDot(status), rental.DisplayProduct(), rental.DisplayCustomer(),
			money(rental.Total()), format.Date(rental.RentalDate))
		if i == r.cursor {
			line = styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}

	s += styles.Help.Render("enter: Details • f: Filter wechseln • n: neue Verleihung • r: neu laden • esc: zurück • q: beenden")
	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
