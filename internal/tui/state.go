package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current screen of an interactive model.
type ViewState int

const (
	// ViewStateLoading is shown while data is being fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the filterable list.
	ViewStateList
	// ViewStateDetail shows the detail overlay for one entry.
	ViewStateDetail
	// ViewStateError shows a load failure.
	ViewStateError
	// ViewStateQuitting is set just before the program exits.
	ViewStateQuitting
)

// String returns the lowercase state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyClose = "x"
)

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minHeight     = 3
	borderPadding = 2

	searchInputCharLimit = 40
	searchInputWidth     = 30
)

// LoadingState wraps the spinner and status line shown while loading.
type LoadingState struct {
	spinner spinner.Model
	message string
	loaded  int
	total   int
}

// NewLoadingState creates a loading state with a dot spinner.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{
		spinner: s,
		message: "Loading Pokémon...",
	}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// SetProgress records how many of total entries have resolved. Reports can
// arrive out of order, so the count never moves backwards.
func (l *LoadingState) SetProgress(loaded, total int) {
	if total != l.total {
		l.loaded = 0
		l.total = total
	}
	l.loaded = max(l.loaded, loaded)
}

// Progress returns the last recorded progress.
func (l *LoadingState) Progress() (int, int) {
	return l.loaded, l.total
}

// RenderLoading draws the spinner line with progress once any is known.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(l.spinner.View())
	b.WriteString(" ")
	b.WriteString(l.message)
	if l.total > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf(" Loaded %d/%d", l.loaded, l.total)))
	}
	return b.String()
}
