package igdb

import (
	"encoding/json"
	"strings"

	"github.com/gamenexus/gamenexus/internal/domain/games"
)

// mapGames decodes each raw entry independently so one malformed record is
// rejected without discarding its well-formed neighbours. Catalog order is
// preserved.
func mapGames(raw []json.RawMessage) ([]games.GameResult, int) {
	results := make([]games.GameResult, 0, len(raw))
	skipped := 0
	for _, entry := range raw {
		var g gameResponse
		if err := json.Unmarshal(entry, &g); err != nil {
			skipped++
			continue
		}
		mapped, ok := mapGame(g)
		if !ok {
			skipped++
			continue
		}
		results = append(results, mapped)
	}
	return results, skipped
}

func mapGame(g gameResponse) (games.GameResult, bool) {
	name := strings.TrimSpace(g.Name)
	if g.ID <= 0 || name == "" {
		return games.GameResult{}, false
	}

	result := games.GameResult{
		ID:               g.ID,
		Name:             name,
		Cover:            mapCover(g.Cover),
		FirstReleaseDate: g.FirstReleaseDate,
		Summary:          strings.TrimSpace(g.Summary),
	}
	if result.FirstReleaseDate < 0 {
		result.FirstReleaseDate = 0
	}

	for _, s := range g.SimilarGames {
		simName := strings.TrimSpace(s.Name)
		if s.ID <= 0 || simName == "" {
			continue
		}
		result.SimilarGames = append(result.SimilarGames, games.SimilarGame{
			ID:    s.ID,
			Name:  simName,
			Cover: mapCover(s.Cover),
		})
	}

	for _, v := range g.Videos {
		if strings.TrimSpace(v.VideoID) == "" {
			continue
		}
		result.Videos = append(result.Videos, games.Video{
			VideoID: strings.TrimSpace(v.VideoID),
			Name:    strings.TrimSpace(v.Name),
		})
	}

	return result, true
}

func mapCover(c coverRef) *games.Cover {
	if strings.TrimSpace(c.URL) == "" {
		return nil
	}
	return &games.Cover{URL: strings.TrimSpace(c.URL)}
}
