package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (cyan), readable on light and dark terminals.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle uses ANSI 2 (green) for arguments and usage lines.
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle uses ANSI 8 (gray) to keep descriptions quiet.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle uses ANSI 3 (yellow) for flags.
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// SectionStyle heads the blocks of the inspect report.
	SectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// WarnStyle marks data-quality findings that deserve a look.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
