package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamenexus/gamenexus/internal/navigator"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDoneMsg:
		if m.nav.Settle(msg.outcome) {
			m.cursor = 0
		}
		return m, nil

	case newsMsg:
		// The sidebar is best-effort; a failed fetch leaves it empty.
		if msg.err == nil {
			m.nav.SetNews(msg.items)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.nav.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateResults(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.startSearch(m.nav.ExecuteSearch(m.input.Value()))
	case tea.KeyEsc, tea.KeyTab, tea.KeyDown:
		if len(m.nav.Snapshot().Results) > 0 {
			m.focus = focusResults
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.nav.SetQueryText(m.input.Value())
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.nav.Snapshot()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "tab", "esc":
		m.focus = focusInput
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(st.Results)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(st.Results) {
			m.nav.ToggleGame(st.Results[m.cursor].ID)
		}
	case "v":
		m.cycleVideo(st)
	case "1", "2", "3":
		n, _ := strconv.Atoi(msg.String())
		if m.cursor >= len(st.Results) {
			return m, nil
		}
		chips := st.Results[m.cursor].SimilarGames
		if n > len(chips) || n > maxChips {
			return m, nil
		}
		return m.startSearch(m.nav.FollowSimilar(chips[n-1].Name))
	}
	return m, nil
}

// startSearch mirrors the navigator's query text into the input box and
// dispatches the request.
func (m Model) startSearch(req navigator.Request, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return m, nil
	}
	m.input.SetValue(req.Term)
	m.input.CursorEnd()
	m.cursor = 0
	return m, tea.Batch(runSearch(m.ctx, req), m.spinner.Tick)
}

// cycleVideo selects the next video of the selected game.
func (m Model) cycleVideo(st navigator.State) {
	g, ok := st.SelectedGame()
	if !ok || len(g.Videos) == 0 {
		return
	}
	next := 0
	for i, v := range g.Videos {
		if v.VideoID == st.SelectedVideoID {
			next = (i + 1) % len(g.Videos)
			break
		}
	}
	m.nav.SelectVideo(g.Videos[next].VideoID)
}
