package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
)

// Provider serves a static catalog and news feed for local development and
// tests. It never performs network I/O.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

const coverPrefix = "//images.igdb.com/igdb/image/upload/t_thumb/"

var catalog = []games.GameResult{
	{
		ID:               1877,
		Name:             "Cyberpunk 2077",
		Cover:            &games.Cover{URL: coverPrefix + "co7497.jpg"},
		FirstReleaseDate: 1607558400,
		Summary:          "An open-world action adventure set in Night City, a megalopolis obsessed with power, glamour and body modification.",
		SimilarGames: []games.SimilarGame{
			{ID: 1942, Name: "The Witcher 3: Wild Hunt", Cover: &games.Cover{URL: coverPrefix + "co1wyy.jpg"}},
			{ID: 472, Name: "The Elder Scrolls V: Skyrim"},
			{ID: 119133, Name: "Elden Ring"},
		},
		Videos: []games.Video{
			{VideoID: "8X2kIfS6fb8", Name: "Trailer"},
			{VideoID: "LembwKDo1Dk", Name: "Gameplay"},
		},
	},
	{
		ID:               1942,
		Name:             "The Witcher 3: Wild Hunt",
		Cover:            &games.Cover{URL: coverPrefix + "co1wyy.jpg"},
		FirstReleaseDate: 1431993600,
		Summary:          "Geralt of Rivia hunts for his adopted daughter across a war-torn continent.",
		SimilarGames: []games.SimilarGame{
			{ID: 1877, Name: "Cyberpunk 2077", Cover: &games.Cover{URL: coverPrefix + "co7497.jpg"}},
			{ID: 472, Name: "The Elder Scrolls V: Skyrim"},
		},
		Videos: []games.Video{
			{VideoID: "c0i88t0Kacs", Name: "Launch Trailer"},
		},
	},
	{
		ID:               472,
		Name:             "The Elder Scrolls V: Skyrim",
		Cover:            &games.Cover{URL: coverPrefix + "co1tnw.jpg"},
		FirstReleaseDate: 1320969600,
		Summary:          "The last Dragonborn faces the return of the World-Eater.",
		SimilarGames: []games.SimilarGame{
			{ID: 1942, Name: "The Witcher 3: Wild Hunt"},
		},
	},
	{
		ID:               119133,
		Name:             "Elden Ring",
		FirstReleaseDate: 1645747200,
		SimilarGames: []games.SimilarGame{
			{ID: 472, Name: "The Elder Scrolls V: Skyrim"},
		},
	},
	{
		ID:               113112,
		Name:             "Hades",
		Cover:            &games.Cover{URL: coverPrefix + "co39vc.jpg"},
		FirstReleaseDate: 1600300800,
		Summary:          "Defy the god of the dead as you hack and slash out of the Underworld.",
		Videos: []games.Video{
			{VideoID: "91t0ha9x0AE", Name: "Release Trailer"},
		},
	},
}

// Search returns catalog entries whose name contains query, ignoring case,
// in catalog order and capped at games.MaxResults. A blank query matches
// nothing.
func (p *Provider) Search(ctx context.Context, query string) ([]games.GameResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(query))
	results := make([]games.GameResult, 0)
	if term == "" {
		return results, nil
	}
	for _, g := range catalog {
		if len(results) == games.MaxResults {
			break
		}
		if strings.Contains(strings.ToLower(g.Name), term) {
			results = append(results, cloneGame(g))
		}
	}
	return results, nil
}

// FetchNews returns a deterministic set of headlines dated relative to now.
func (p *Provider) FetchNews(ctx context.Context) ([]news.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := p.now().UTC().Truncate(time.Hour)
	return []news.Item{
		{
			Title:   "Patch notes roundup",
			Link:    "https://example.com/news/patch-notes",
			PubDate: now.Format(time.RFC3339),
			Snippet: "Every balance change from this week's updates.",
		},
		{
			Title:   "Upcoming releases",
			Link:    "https://example.com/news/upcoming",
			PubDate: now.Add(-3 * time.Hour).Format(time.RFC3339),
			Snippet: "The titles worth watching next month.",
		},
		{
			Title:   "Studio interview",
			Link:    "https://example.com/news/interview",
			PubDate: now.Add(-26 * time.Hour).Format(time.RFC3339),
			Snippet: "A conversation about building open worlds.",
		},
	}, nil
}

// cloneGame copies slices so callers cannot mutate the shared catalog.
func cloneGame(g games.GameResult) games.GameResult {
	out := g
	if g.Cover != nil {
		c := *g.Cover
		out.Cover = &c
	}
	if len(g.SimilarGames) > 0 {
		out.SimilarGames = make([]games.SimilarGame, len(g.SimilarGames))
		for i, s := range g.SimilarGames {
			out.SimilarGames[i] = s
			if s.Cover != nil {
				c := *s.Cover
				out.SimilarGames[i].Cover = &c
			}
		}
	}
	if len(g.Videos) > 0 {
		out.Videos = append([]games.Video(nil), g.Videos...)
	}
	return out
}
