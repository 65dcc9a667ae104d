package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorAccent  = lipgloss.Color("214")
	ColorHeader  = lipgloss.Color("63")
	ColorLabel   = lipgloss.Color("245")
	ColorSubtle  = lipgloss.Color("241")
	ColorError   = lipgloss.Color("196")
	ColorSkel    = lipgloss.Color("237")
	ColorSelFg   = lipgloss.Color("229")
	ColorSelBg   = lipgloss.Color("57")
	ColorSuccess = lipgloss.Color("42")
)

//nolint:gochecknoglobals // Shared styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	CriticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	SkeletonStyle = lipgloss.NewStyle().
			Foreground(ColorSkel)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelFg).
			Background(ColorSelBg)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHeader).
			Padding(0, 1)
)
