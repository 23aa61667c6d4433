package testutil

import (
	"context"
	"sync"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
)

// StubSearcher returns fixed results or an error and records each query.
type StubSearcher struct {
	Results []games.GameResult
	Err     error

	mu      sync.Mutex
	queries []string
}

func (s *StubSearcher) Search(ctx context.Context, query string) ([]games.GameResult, error) {
	_ = ctx
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	return s.Results, s.Err
}

// Queries returns the queries seen so far.
func (s *StubSearcher) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// StubNewsFetcher returns fixed items or an error.
type StubNewsFetcher struct {
	Items []news.Item
	Err   error
}

func (f StubNewsFetcher) FetchNews(ctx context.Context) ([]news.Item, error) {
	_ = ctx
	return f.Items, f.Err
}
