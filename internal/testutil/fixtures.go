package testutil

import (
	"fmt"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
)

// SampleGame returns a minimal game fixture with the provided id and name.
func SampleGame(id int64, name string) games.GameResult {
	return games.GameResult{
		ID:               id,
		Name:             name,
		Cover:            &games.Cover{URL: fmt.Sprintf("//images.igdb.com/igdb/image/upload/t_thumb/co%d.jpg", id)},
		FirstReleaseDate: 1607558400,
		Summary:          name + " summary",
	}
}

// SampleGameWithMedia returns a game carrying similar games and videos.
func SampleGameWithMedia(id int64, name string, similar []string, videoIDs ...string) games.GameResult {
	g := SampleGame(id, name)
	for i, s := range similar {
		g.SimilarGames = append(g.SimilarGames, games.SimilarGame{ID: id*100 + int64(i) + 1, Name: s})
	}
	for _, v := range videoIDs {
		g.Videos = append(g.Videos, games.Video{VideoID: v, Name: "Trailer " + v})
	}
	return g
}

// SampleNews returns n deterministic headlines.
func SampleNews(n int) []news.Item {
	items := make([]news.Item, n)
	for i := range items {
		items[i] = news.Item{
			Title:   fmt.Sprintf("Headline %d", i+1),
			Link:    fmt.Sprintf("https://news.example.com/%d", i+1),
			Snippet: "snippet",
		}
	}
	return items
}
