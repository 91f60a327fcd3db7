// ABOUTME: Customer list screen with backend search
// ABOUTME: Mirrors the mobile customers screen including the search field

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/tui/styles"
)

// customersScreen lists customers with a search input
type customersScreen struct {
	search    textinput.Model
	searching bool
	customers []api.Customer
	cursor    int
}

func newCustomersScreen() *customersScreen {
	search := textinput.New()
	search.Placeholder = "Suche..."
	search.CharLimit = 64
	return &customersScreen{search: search}
}

func (c *customersScreen) setCustomers(customers []api.Customer) {
	c.customers = customers
	if c.cursor >= len(customers) {
		c.cursor = 0
	}
}

// updateCustomers handles key input on the customer list
func (a *App) updateCustomers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := a.customers
	if c == nil {
		return a, nil
	}

	if c.searching {
		switch msg.String() {
		case "enter":
			c.searching = false
			c.search.Blur()
			a.loading = true
			return a, a.loadCustomers(c.search.Value())
		case "esc":
			c.searching = false
			c.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.screen = ScreenHome
		return a, nil
	case "/":
		c.searching = true
		return a, c.search.Focus()
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.customers)-1 {
			c.cursor++
		}
	case "r":
		a.loading = true
		return a, a.loadCustomers(c.search.Value())
	}
	return a, nil
}

func (c *customersScreen) View() string {
	s := styles.Title.Render("Kunden") + "\n"
	s += c.search.View() + "\n\n"

	if len(c.customers) == 0 {
		s += styles.StatLabel.Render("Keine Kunden gefunden") + "\n"
	}
	for i := range c.customers {
		cust := &c.customers[i]
		line := fmt.Sprintf("%-30s %s", cust.DisplayName(), cust.AddressLine())
		if i == c.cursor && !c.searching {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}

	s += styles.Help.Render("/: suchen • r: neu laden • esc: zurück • q: beenden")
	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
