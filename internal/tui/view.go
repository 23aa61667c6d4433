package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/navigator"
)

const (
	statusIdle    = "System Ready. Awaiting Input."
	statusLoading = "Searching..."
	noCover       = "NO SIGNAL"
	noSummary     = "No database entry available for this title."
	newsWidth     = 36
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("255"))

	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	chipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// View renders the screen.
func (m Model) View() string {
	st := m.nav.Snapshot()

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("GAMENEXUS"),
		m.input.View(),
		"",
		m.statusLine(st),
		"",
		m.resultsView(st),
	)

	body := left
	if len(st.News) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", newsView(st.News))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", dimStyle.Render(m.help()))
}

func (m Model) statusLine(st navigator.State) string {
	switch {
	case st.Loading:
		return m.spinner.View() + " " + statusLoading
	case st.Err != "":
		return errorStyle.Render("ERROR: " + st.Err)
	case st.Phase == navigator.PhaseReady && len(st.Results) > 0:
		return fmt.Sprintf("%d RESULTS FOUND", len(st.Results))
	default:
		return dimStyle.Render(statusIdle)
	}
}

func (m Model) resultsView(st navigator.State) string {
	if len(st.Results) == 0 {
		return ""
	}
	var b strings.Builder
	for i, g := range st.Results {
		line := cardTitle(g)
		if m.focus == focusResults && i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if chips := chipsLine(g); chips != "" {
			b.WriteString("    " + chips + "\n")
		}
		if g.ID == st.SelectedGameID {
			b.WriteString(panelStyle.Render(detailView(g, st.SelectedVideoID)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func cardTitle(g games.GameResult) string {
	if y := g.ReleaseYear(); y > 0 {
		return g.Name + " (" + strconv.Itoa(y) + ")"
	}
	return g.Name
}

func chipsLine(g games.GameResult) string {
	n := min(len(g.SimilarGames), maxChips)
	if n == 0 {
		return ""
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("[%d] %s", i+1, g.SimilarGames[i].Name))
	}
	return chipStyle.Render(strings.Join(parts, "  "))
}

func detailView(g games.GameResult, selectedVideo string) string {
	lines := make([]string, 0, 8)

	if cover := g.Cover.BigURL(); cover != "" {
		lines = append(lines, "Cover: "+cover)
	} else {
		lines = append(lines, dimStyle.Render(noCover))
	}

	summary := strings.TrimSpace(g.Summary)
	if summary == "" {
		summary = noSummary
	}
	lines = append(lines, "", lipgloss.NewStyle().Width(64).Render(summary))

	if len(g.Videos) > 0 {
		lines = append(lines, "", "Videos:")
		for _, v := range g.Videos {
			label := v.Name
			if label == "" {
				label = v.VideoID
			}
			if v.VideoID == selectedVideo {
				lines = append(lines, selectedStyle.Render("> "+label), "  "+v.WatchURL())
			} else {
				lines = append(lines, "  "+label)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func newsView(items []news.Item) string {
	lines := []string{titleStyle.Render("NEWS")}
	for _, item := range items {
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Width(newsWidth).Render(item.Title),
			dimStyle.Width(newsWidth).Render(item.PubDate),
			"",
		)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) help() string {
	if m.focus == focusInput {
		return "enter: search • tab: results • ctrl+c: quit"
	}
	return "j/k: move • enter: expand • 1-3: similar • v: video • /: search • q: quit"
}
