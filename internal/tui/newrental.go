// ABOUTME: New-rental flow: pick customer, pick product, confirm
// ABOUTME: Price and deposit default from the selected product, like the mobile app

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/tui/styles"
)

// Steps of the new-rental flow
const (
	stepCustomer = iota
	stepProduct
	stepConfirm
)

// newRentalScreen drives the three-step creation flow
type newRentalScreen struct {
	customers []api.Customer
	products  []api.Product
	step      int
	cursor    int

	customer *api.Customer
	product  *api.Product
	notes    textinput.Model
}

func newNewRentalScreen(customers []api.Customer, products []api.Product) *newRentalScreen {
	notes := textinput.New()
	notes.Placeholder = "Notizen (optional)"
	notes.CharLimit = 200
	return &newRentalScreen{customers: customers, products: products, notes: notes}
}

func (n *newRentalScreen) listLen() int {
	if n.step == stepCustomer {
		return len(n.customers)
	}
	return len(n.products)
}

// updateNewRental handles key input across the flow steps
func (a *App) updateNewRental(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := a.newRental
	if n == nil {
		return a, nil
	}

	if n.step == stepConfirm {
		switch msg.String() {
		case "enter":
			a.loading = true
			return a, a.doCreateRental(&api.CreateRentalRequest{
				CustomerID:    n.customer.ID,
				ProductID:     n.product.ID,
				RentalPrice:   n.product.Price(),
				DepositAmount: n.product.Deposit(),
				Notes:         n.notes.Value(),
			})
		case "esc":
			n.step = stepProduct
			n.cursor = 0
			n.notes.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		n.notes, cmd = n.notes.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		if n.step == stepProduct {
			n.step = stepCustomer
			n.cursor = 0
			return a, nil
		}
		a.screen = ScreenHome
		return a, nil
	case "up", "k":
		if n.cursor > 0 {
			n.cursor--
		}
	case "down", "j":
		if n.cursor < n.listLen()-1 {
			n.cursor++
		}
	case "enter":
		switch n.step {
		case stepCustomer:
			if n.cursor < len(n.customers) {
				n.customer = &n.customers[n.cursor]
				n.step = stepProduct
				n.cursor = 0
			}
		case stepProduct:
			if n.cursor < len(n.products) {
				n.product = &n.products[n.cursor]
				n.step = stepConfirm
				return a, n.notes.Focus()
			}
		}
	}
	return a, nil
}

func (n *newRentalScreen) View() string {
	s := styles.Title.Render("Neue Verleihung") + "\n"

	switch n.step {
	case stepCustomer:
		s += styles.Subtitle.Render("Schritt 1/3: Kunde auswählen") + "\n"
		if len(n.customers) == 0 {
			s += styles.StatLabel.Render("Keine Kunden vorhanden") + "\n"
		}
		for i := range n.customers {
			line := n.customers[i].DisplayName()
			if i == n.cursor {
				line = styles.Selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			s += line + "\n"
		}
		s += styles.Help.Render("enter: auswählen • esc: abbrechen")

	case stepProduct:
		s += styles.Subtitle.Render("Schritt 2/3: Produkt auswählen") + "\n"
		if len(n.products) == 0 {
			s += styles.StatLabel.Render("Keine verfügbaren Produkte") + "\n"
		}
		for i := range n.products {
			p := &n.products[i]
			line := fmt.Sprintf("%-30s %10s  %d verfügbar", p.Name, money(p.Price()), p.Available())
			if i == n.cursor {
				line = styles.Selected.Render("> ") + line
			} else {
				line = "  " + line
			}
			s += line + "\n"
		}
		s += styles.Help.Render("enter: auswählen • esc: zurück")

	case stepConfirm:
		s += styles.Subtitle.Render("Schritt 3/3: Bestätigen") + "\n"
		s += styles.ActiveCard.Render(fmt.Sprintf(
			"%s an %s verleihen?\n\nMietpreis: %s\nKaution:   %s\n\n%s",
			n.product.Name, n.customer.DisplayName(),
			money(n.product.Price()), money(n.product.Deposit()),
			n.notes.View()))
		s += "\n" + styles.Help.Render("enter: Verleihung erstellen • esc: zurück")
	}

	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
