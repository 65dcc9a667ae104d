package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results reach the user.
type OutputMode int

const (
	// OutputModePlain writes unstyled tables, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled output without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive
)

// Environment variables honoured by DetectOutputMode.
const (
	envNoColor = "NO_COLOR"
	envTerm    = "TERM"
	envCI      = "CI"
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode from flags and the attached terminal.
// plain wins over everything; noColor degrades to plain; forceColor yields
// styled output even when stdout is not a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := os.LookupEnv(envNoColor); ok {
		return OutputModePlain
	}
	if os.Getenv(envTerm) == "dumb" {
		return OutputModePlain
	}

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))

	switch {
	case stdoutTTY && stdinTTY && os.Getenv(envCI) == "":
		return OutputModeInteractive
	case stdoutTTY || forceColor:
		return OutputModeStyled
	default:
		return OutputModePlain
	}
}

// TerminalWidth returns the stdout width, or defaultWidth when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// ForceColorProfile makes lipgloss emit 256-colour sequences even when
// stdout is a pipe.
func ForceColorProfile() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}
