package providers

import (
	"context"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
)

// TokenExchanger obtains a bearer token from the credential service.
type TokenExchanger interface {
	Exchange(ctx context.Context, creds Credentials) (AccessToken, error)
}

// CatalogQuerier sends a built query expression to the game catalog.
type CatalogQuerier interface {
	QueryGames(ctx context.Context, clientID string, token AccessToken, query string) ([]games.GameResult, error)
}

// GameSearcher resolves free text into catalog results.
type GameSearcher interface {
	Search(ctx context.Context, query string) ([]games.GameResult, error)
}

// NewsFetcher reads the syndicated news feed.
type NewsFetcher interface {
	FetchNews(ctx context.Context) ([]news.Item, error)
}
