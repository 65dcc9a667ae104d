package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	listview "github.com/rshade/pokedex/internal/tui/list"
)

// chromeHeight is the number of lines taken by title, search box and footer.
const chromeHeight = 7

// LoadFunc fetches the full collection once. It should stop when ctx is done.
type LoadFunc func(ctx context.Context) ([]pokedex.Pokemon, error)

// PokemonLoadedMsg carries the outcome of the one-time load.
type PokemonLoadedMsg struct {
	Pokemon []pokedex.Pokemon
	Err     error
}

// LoadProgressMsg reports how many details have resolved so far.
type LoadProgressMsg struct {
	Loaded int
	Total  int
}

// PokedexModel is the Bubble Tea model for the interactive browser.
type PokedexModel struct {
	ctx   context.Context //nolint:containedctx // Needed for logging inside Update.
	state ViewState

	all      []pokedex.Pokemon // Source of truth
	filtered []pokedex.Pokemon // Current view of all
	selected *pokedex.Pokemon  // Copy shown in the overlay

	virtualList *listview.VirtualListModel[pokedex.Pokemon]
	search      textinput.Model

	width  int
	height int

	loading  *LoadingState
	fetchCmd tea.Cmd

	err error
}

// NewPokedexModel creates a model in the loading state that runs load once
// when the program starts.
func NewPokedexModel(ctx context.Context, load LoadFunc) *PokedexModel {
	m := &PokedexModel{
		ctx:     ctx,
		state:   ViewStateLoading,
		search:  newSearchInput(),
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
		fetchCmd: func() tea.Msg {
			list, err := load(ctx)
			return PokemonLoadedMsg{Pokemon: list, Err: err}
		},
	}
	m.virtualList = listview.NewVirtualListModel(m.filtered, m.listHeight(), m.width, RenderCard)
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search Pokémon"
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	ti.Focus()
	return ti
}

// Init starts the spinner, the cursor blink and the load.
func (m *PokedexModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), textinput.Blink, m.fetchCmd)
}

// Update handles messages and updates the model state.
func (m *PokedexModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.virtualList.SetSize(m.listHeight(), m.width)
		return m, nil
	case PokemonLoadedMsg:
		return m.handleLoaded(msg)
	case LoadProgressMsg:
		m.loading.SetProgress(msg.Loaded, msg.Total)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *PokedexModel) handleLoaded(msg PokemonLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	if msg.Err != nil {
		log.Error().Ctx(m.ctx).Str("component", "tui").Err(msg.Err).Msg("load failed")
		m.err = msg.Err
		m.state = ViewStateError
		return m, nil
	}
	m.all = msg.Pokemon
	m.state = ViewStateList
	m.applyFilter()
	log.Debug().Ctx(m.ctx).Str("component", "tui").
		Int("count", len(m.all)).
		Int("filtered", len(m.filtered)).
		Msg("collection loaded")
	return m, nil
}

// handleLoadingUpdate keeps the spinner running and lets the user type ahead.
func (m *PokedexModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var searchCmd tea.Cmd
	m.search, searchCmd = m.search.Update(msg)
	return m, tea.Batch(m.loading.Update(msg), searchCmd)
}

func (m *PokedexModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.selectCurrent()
			return m, nil
		case keyEsc:
			if m.search.Value() == "" {
				m.state = ViewStateQuitting
				return m, tea.Quit
			}
			m.search.SetValue("")
			m.applyFilter()
			return m, nil
		}
		if m.virtualList.HandleKey(keyMsg) {
			return m, nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *PokedexModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyEnter, keyClose:
			m.closeDetail()
		}
	}
	return m, nil
}

func (m *PokedexModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyEsc, keyEnter:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	return m, nil
}

// applyFilter recomputes the visible entries from all and the search text.
func (m *PokedexModel) applyFilter() {
	m.filtered = pokedex.Filter(m.all, m.search.Value())
	m.virtualList.SetItems(m.filtered)
}

// selectCurrent opens the overlay on a copy of the highlighted entry.
func (m *PokedexModel) selectCurrent() {
	item := m.virtualList.SelectedItem()
	if item == nil {
		return
	}
	p := *item
	p.Types = slices.Clone(item.Types)
	m.selected = &p
	m.state = ViewStateDetail
}

func (m *PokedexModel) closeDetail() {
	m.selected = nil
	m.state = ViewStateList
}

func (m *PokedexModel) listHeight() int {
	h := m.height - chromeHeight
	if h < minHeight {
		h = minHeight
	}
	return h
}

// State returns the current view state.
func (m *PokedexModel) State() ViewState {
	return m.state
}

// All returns the loaded collection.
func (m *PokedexModel) All() []pokedex.Pokemon {
	return m.all
}

// Filtered returns the entries currently shown.
func (m *PokedexModel) Filtered() []pokedex.Pokemon {
	return m.filtered
}

// Selected returns the entry shown in the overlay, or nil.
func (m *PokedexModel) Selected() *pokedex.Pokemon {
	return m.selected
}

// Search returns the current search text.
func (m *PokedexModel) Search() string {
	return m.search.Value()
}

// Err returns the load error, if any.
func (m *PokedexModel) Err() error {
	return m.err
}
