// ABOUTME: Product list screen with prices and availability
// ABOUTME: Mirrors the mobile products screen

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/tui/styles"
)

// productsScreen lists the rentable equipment
type productsScreen struct {
	products []api.Product
	cursor   int
}

func newProductsScreen(products []api.Product) *productsScreen {
	return &productsScreen{products: products}
}

// updateProducts handles key input on the product list
func (a *App) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.products
	if p == nil {
		return a, nil
	}
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.screen = ScreenHome
		return a, nil
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.products)-1 {
			p.cursor++
		}
	case "r":
		a.loading = true
		return a, a.loadProducts()
	}
	return a, nil
}

func (p *productsScreen) View() string {
	s := styles.Title.Render("Produkte") + "\n"

	if len(p.products) == 0 {
		s += styles.StatLabel.Render("Keine Produkte gefunden") + "\n"
	}
	for i := range p.products {
		prod := &p.products[i]
		avail := fmt.Sprintf("%d/%d", prod.Available(), prod.Gesamt)
		availStyle := styles.StatusReturned
		if prod.Available() == 0 {
			availStyle = styles.StatusOverdue
		}
		line := fmt.Sprintf("%-30s %10s  %s", prod.Name, money(prod.Price()), availStyle.Render(avail))
		if i == p.cursor {
			line = styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}

	s += styles.Help.Render("r: neu laden • esc: zurück • q: beenden")
	return lipgloss.NewStyle().Margin(1, 2).Render(s)
}
