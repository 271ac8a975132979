// Package display renders the recipe browser with Bubble Tea.
//
// The [Model] owns no domain state of its own: everything the user sees
// flows from a [browse.State], and every mutation goes through the browse
// reducer. Update translates key and fetch-completion messages into browse
// events; View renders whatever state results.
package display

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khmoussa/dishboard/internal/browse"
	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
)

// focusArea identifies which control receives key input.
type focusArea int

const (
	focusSearch focusArea = iota
	focusIngredient
	focusGrid
)

// Messages delivered by fetch commands. Both carry the sequence number of
// the fetch that produced them so the reducer can discard stale ones.
type (
	recipesMsg struct {
		seq     int
		recipes []domain.Recipe
	}
	fetchFailedMsg struct {
		seq int
		err error
	}
)

// Model is the Bubble Tea model for the browser.
type Model struct {
	state browse.State
	src   domain.RecipeSource
	log   *logger.Logger

	searchInput     textinput.Model
	ingredientInput textinput.Model
	spin            spinner.Model
	focus           focusArea

	cursor int // grid cursor, index into state.Recipes
	scroll int // first visible card row

	width  int
	height int
}

// New creates the browser model and issues the initial fetch transition
// (the fetch command itself runs from Init).
func New(src domain.RecipeSource, log *logger.Logger) Model {
	search := textinput.New()
	search.Placeholder = "name or description"
	search.Prompt = ""
	search.CharLimit = 200
	search.Width = 28
	search.Focus()

	ingredient := textinput.New()
	ingredient.Placeholder = "ingredient"
	ingredient.Prompt = ""
	ingredient.CharLimit = 200
	ingredient.Width = 28

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := Model{
		src:             src,
		log:             log,
		searchInput:     search,
		ingredientInput: ingredient,
		spin:            sp,
		focus:           focusSearch,
	}
	m.state = browse.Apply(browse.NewState(), browse.FetchStarted{})
	return m
}

// State exposes the current browse state (used by tests).
func (m Model) State() browse.State { return m.state }

// Init starts the cursor blink, the spinner, and the mount-time fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.fetchCmd(m.state.Seq, m.state.Filter),
	)
}

// fetchCmd performs one fetch on a background goroutine and delivers the
// outcome tagged with seq. No cancellation: superseded completions are
// simply discarded by the reducer.
func (m Model) fetchCmd(seq int, f domain.Filter) tea.Cmd {
	src := m.src
	return func() tea.Msg {
		recipes, err := src.Fetch(context.Background(), f)
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return recipesMsg{seq: seq, recipes: recipes}
	}
}

// Update is the event loop: key messages become browse events and focus
// moves, completion messages run through the reducer.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		fieldWidth := (msg.Width - 24) / 2
		if fieldWidth < 16 {
			fieldWidth = 16
		}
		m.searchInput.Width = fieldWidth
		m.ingredientInput.Width = fieldWidth
		m.clampScroll()
		return m, nil

	case recipesMsg:
		fresh := msg.seq == m.state.Seq
		m.state = browse.Apply(m.state, browse.FetchSucceeded{Seq: msg.seq, Recipes: msg.recipes})
		if fresh {
			m.cursor = 0
			m.scroll = 0
		}
		return m, nil

	case fetchFailedMsg:
		fresh := msg.seq == m.state.Seq
		m.state = browse.Apply(m.state, browse.FetchFailed{Seq: msg.seq, Err: msg.err})
		if fresh {
			m.cursor = 0
			m.scroll = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Detail view open: any dismiss key clears the selection, everything
	// else is swallowed so the grid underneath doesn't move.
	if m.state.Selected != nil {
		switch msg.String() {
		case "esc", "q", "enter", "backspace":
			m.state = browse.Apply(m.state, browse.SelectionCleared{})
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		return m.cycleFocus(1), nil
	case "shift+tab":
		return m.cycleFocus(-1), nil
	case "enter":
		if m.focus == focusGrid {
			if len(m.state.Recipes) > 0 && m.cursor < len(m.state.Recipes) {
				m.state = browse.Apply(m.state, browse.Selected{Recipe: m.state.Recipes[m.cursor]})
			}
			return m, nil
		}
		return m.submitSearch()
	case "esc":
		if m.focus != focusGrid {
			return m.setFocus(focusGrid), nil
		}
		return m, nil
	case "q":
		if m.focus == focusGrid {
			return m, tea.Quit
		}
	case "up", "k":
		if m.focus == focusGrid {
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampScroll()
			return m, nil
		}
		if msg.String() == "up" {
			return m.cycleFocus(-1), nil
		}
	case "down", "j":
		if m.focus == focusGrid {
			if m.cursor < len(m.state.Recipes)-1 {
				m.cursor++
			}
			m.clampScroll()
			return m, nil
		}
		if msg.String() == "down" {
			return m.cycleFocus(1), nil
		}
	}

	return m.updateInputs(msg)
}

// submitSearch starts a fetch with the current field values.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	f := domain.Filter{
		Search:     m.searchInput.Value(),
		Ingredient: m.ingredientInput.Value(),
	}
	m.state = browse.Apply(m.state, browse.FetchStarted{Filter: f})
	m.log.Info("search: %+v (seq=%d)", f, m.state.Seq)
	return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.state.Seq, f))
}

// updateInputs forwards a message to the focused text field and mirrors
// the field values into the browse filter on every keystroke.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case focusIngredient:
		m.ingredientInput, cmd = m.ingredientInput.Update(msg)
	default:
		return m, nil
	}
	m.state = browse.Apply(m.state, browse.FilterEdited{Filter: domain.Filter{
		Search:     m.searchInput.Value(),
		Ingredient: m.ingredientInput.Value(),
	}})
	return m, cmd
}

func (m Model) cycleFocus(dir int) Model {
	next := (int(m.focus) + dir + 3) % 3
	return m.setFocus(focusArea(next))
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	m.searchInput.Blur()
	m.ingredientInput.Blur()
	switch f {
	case focusSearch:
		m.searchInput.Focus()
	case focusIngredient:
		m.ingredientInput.Focus()
	}
	return m
}

// clampScroll keeps the cursor inside the visible window of the grid.
func (m *Model) clampScroll() {
	visible := m.visibleCards()
	if visible <= 0 {
		return
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// visibleCards returns how many cards fit below the header and filter
// panel. Each card renders as cardHeight lines.
func (m Model) visibleCards() int {
	if m.height == 0 {
		return 6 // before the first WindowSizeMsg
	}
	n := (m.height - chromeHeight) / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}
