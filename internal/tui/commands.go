package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/navigator"
	"github.com/gamenexus/gamenexus/internal/providers"
)

type searchDoneMsg struct {
	outcome navigator.Outcome
}

type newsMsg struct {
	items []news.Item
	err   error
}

func runSearch(ctx context.Context, req navigator.Request) tea.Cmd {
	return func() tea.Msg {
		return searchDoneMsg{outcome: req.Do(ctx)}
	}
}

func fetchNews(ctx context.Context, fetcher providers.NewsFetcher) tea.Cmd {
	if fetcher == nil {
		return nil
	}
	return func() tea.Msg {
		items, err := fetcher.FetchNews(ctx)
		return newsMsg{items: items, err: err}
	}
}
