// Package tui renders the navigator as a bubbletea program.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamenexus/gamenexus/internal/navigator"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// maxChips is how many similar games each card offers.
const maxChips = 3

type focus int

const (
	focusInput focus = iota
	focusResults
)

// Model is the bubbletea model. All search and selection state lives in the
// navigator; the model only tracks cursor, focus and widget state.
type Model struct {
	ctx     context.Context
	nav     *navigator.Navigator
	news    providers.NewsFetcher
	input   textinput.Model
	spinner spinner.Model
	focus   focus
	cursor  int
	width   int
	height  int
}

// New builds a model around nav. news may be nil, in which case the sidebar
// stays empty.
func New(ctx context.Context, nav *navigator.Navigator, news providers.NewsFetcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a game..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	return Model{
		ctx:     ctx,
		nav:     nav,
		news:    news,
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:   focusInput,
	}
}

// Init fetches the news sidebar once and starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchNews(m.ctx, m.news))
}
