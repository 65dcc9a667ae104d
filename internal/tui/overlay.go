package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimLines strips styling from bg and redraws every line in SubtleStyle so
// it reads as a backdrop.
func dimLines(bg string) []string {
	lines := strings.Split(ansi.Strip(bg), "\n")
	for i, line := range lines {
		lines[i] = SubtleStyle.Render(line)
	}
	return lines
}

// placeOverlay draws fg centred over a dimmed bg within a width x height
// screen. Background lines outside fg stay visible. When fg does not fit,
// fg is returned alone.
func placeOverlay(fg, bg string, width, height int) string {
	fgWidth, fgHeight := lipgloss.Width(fg), lipgloss.Height(fg)
	if fgWidth > width || fgHeight > height {
		return fg
	}

	lines := dimLines(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}

	x := (width - fgWidth) / 2  //nolint:mnd // Centre.
	y := (height - fgHeight) / 2 //nolint:mnd // Centre.

	for i, fgLine := range strings.Split(fg, "\n") {
		bgLine := lines[y+i]
		left := ansi.Truncate(bgLine, x, "")
		left += strings.Repeat(" ", x-ansi.StringWidth(left))
		right := ansi.TruncateLeft(bgLine, x+fgWidth, "")
		lines[y+i] = left + fgLine + right
	}
	return strings.Join(lines, "\n")
}
