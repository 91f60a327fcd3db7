// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Carries the Kirschenholz brewery palette used across all screens

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette (Kirschenholz wood tones)
	Primary      = lipgloss.Color("#8B4513") // Brown
	PrimaryLight = lipgloss.Color("#A0522D") // Sienna
	Secondary    = lipgloss.Color("#D2691E") // Chocolate
	Accent       = lipgloss.Color("#CD853F") // Peru

	// Colors - Semantic
	Success = lipgloss.Color("#4CAF50") // Green
	Warning = lipgloss.Color("#FF9800") // Orange
	Danger  = lipgloss.Color("#F44336") // Red
	Info    = lipgloss.Color("#2196F3") // Blue
	Muted   = lipgloss.Color("#757575") // Gray
	Text    = lipgloss.Color("#F5F5F5") // Light

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryLight).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusActive = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusReturned = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusOverdue = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels (the Card look of the mobile app)
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActiveCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryLight).
			Padding(1, 2)

	// Selected list row
	Selected = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Error banner
	ErrorBanner = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Stat cards on the dashboard
	StatValue = lipgloss.NewStyle().
			Foreground(PrimaryLight).
			Bold(true)

	StatLabel = lipgloss.NewStyle().
			Foreground(Muted)
)
