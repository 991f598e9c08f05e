package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style

	Border            lipgloss.Border
	BorderColor       lipgloss.TerminalColor
	SymOK, SymFail    string
	SymDone, SymPend  string
	BarFull, BarEmpty string

	// Mono themes never emit color, whatever the terminal supports.
	Mono bool
}

// Themes lists the names accepted by NewTheme.
var Themes = []string{"classic", "neon", "mono"}

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// NewTheme builds the named theme on r. Unknown names fall back to classic.
func NewTheme(r *lipgloss.Renderer, name string) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted: s().Foreground(lipgloss.Color("8")), Accent: s().Foreground(lipgloss.Color("14")),
			Success: s().Foreground(lipgloss.Color("42")), Error: s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("11")),
			Selected: s().Bold(true).Foreground(lipgloss.Color("13")),
			Done:     s().Faint(true).Strikethrough(true),
			Border:   lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("14"),
			SymOK: "✔", SymFail: "✖", SymDone: "◼", SymPend: "◻",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: s(), Muted: s(), Accent: s(), Success: s(), Error: s(), Pending: s(),
			Selected: s(), Done: s(),
			Border: lipgloss.ASCIIBorder(), BorderColor: lipgloss.NoColor{},
			SymOK: "ok:", SymFail: "error:", SymDone: "x", SymPend: "-",
			BarFull: "#", BarEmpty: ".",
			Mono: true,
		}
	default:
		return Theme{
			Name:  "classic",
			Title: s().Bold(true),
			Muted: s().Faint(true), Accent: s().Foreground(lipgloss.Color("12")),
			Success: s().Foreground(lipgloss.Color("42")), Error: s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("214")),
			Selected: s().Bold(true).Reverse(true),
			Done:     s().Faint(true).Strikethrough(true),
			Border:   lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			SymOK: "✔", SymFail: "✖", SymDone: "☑", SymPend: "☐",
			BarFull: "█", BarEmpty: "░",
		}
	}
}
