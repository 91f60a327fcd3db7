// ABOUTME: Status badge widget for rental states
// ABOUTME: Renders the colored inline badge the mobile app shows on rental cards

package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/holgerweigert/verleih/internal/format"
)

// StatusBadge renders a rental status as a colored badge with its
// German label. Unknown statuses get the neutral gray badge and are
// echoed unchanged.
func StatusBadge(status string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(format.StatusColor(status))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Bold(true)
	return style.Render(format.StatusText(status))
}

// StatusDot renders a compact colored marker for list rows.
func StatusDot(status string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(format.StatusColor(status))).
		Render("●")
}
