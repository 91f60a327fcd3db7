// ABOUTME: Dashboard screen with statistics and recent active rentals
// ABOUTME: Entry point of the authenticated area, mirrors the mobile home screen

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

// maxRecentRentals limits the dashboard rental list, like the mobile app
const maxRecentRentals = 5

// homeScreen shows the aggregate counters and the latest active rentals
type homeScreen struct {
	stats  *api.Stats
	recent []api.Rental
}

func newHomeScreen(stats *api.Stats, rentals []api.Rental) *homeScreen {
	if len(rentals) > maxRecentRentals {
		rentals = rentals[:maxRecentRentals]
	}
	return &homeScreen{stats: stats, recent: rentals}
}

// updateHome handles key input on the dashboard
func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.loading = true
		return a, a.loadHome()
	case "k":
		a.screen = ScreenCustomers
		a.loading = true
		return a, a.loadCustomers("")
	case "p":
		a.screen = ScreenProducts
		a.loading = true
		return a, a.loadProducts()
	case "v":
		a.screen = ScreenRentals
		a.loading = true
		return a, a.loadRentals(api.FilterActive)
	case "n":
		a.loading = true
		return a, a.loadNewRentalData()
	case "a":
		// Abmelden: clearing the store flips the monitor, which
		// routes back to the login screen.
		a.client.Logout()
		return a, nil
	}
	return a, nil
}

func (h *homeScreen) View() string {
	var stats api.Stats
	if h.stats != nil {
		stats = *h.stats
	}

	statCards := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Card.Render(
			styles.StatValue.Render(fmt.Sprintf("%d", stats.ActiveRentals))+"\n"+
				styles.StatLabel.Render("Aktive Verleihungen")),
		" ",
		styles.Card.Render(
			styles.StatValue.Render(fmt.Sprintf("%d", stats.TotalCustomers))+"\n"+
				styles.StatLabel.Render("Kunden")),
	)

	s := styles.Title.Render("Dashboard") + "\n" +
		styles.Subtitle.Render("Brauerei Kirschenholz") + "\n" +
		statCards + "\n\n"

	s += styles.Title.Render("Aktive Verleihungen") + "\n"
	if len(h.recent) == 0 {
		s += styles.StatLabel.Render("Keine aktiven Verleihungen") + "\n"
	}
	for i := range h.recent {
		r := &h.recent[i]
		s += fmt.Sprintf("%s %s → %s\n", widgets.StatusDot(string(r.Classify())), r.DisplayProduct(), r.DisplayCustomer())
		s += fmt.Sprintf("   Ausgeliehen am: %s   %s\n", format.Date(r.RentalDate), money(r.Total()))
	}

	s += styles.Help.Render("k: Kunden • p: Produkte • v: Verleihungen • n: neue Verleihung • r: neu laden • a: abmelden • q: beenden")
	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
