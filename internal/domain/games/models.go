package games

import (
	"strings"
	"time"
)

// MaxResults caps how many games a single catalog search may return.
const MaxResults = 12

// Cover references the catalog's cover art. URL is protocol-relative as
// returned upstream (//images.igdb.com/...).
type Cover struct {
	URL string `json:"url"`
}

// BigURL returns an absolute https URL for the large cover variant.
func (c *Cover) BigURL() string {
	if c == nil || c.URL == "" {
		return ""
	}
	u := c.URL
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return strings.Replace(u, "t_thumb", "t_cover_big", 1)
}

// SimilarGame is a shallow reference to a related title. It is never
// expanded in place; following one issues a new search by Name.
type SimilarGame struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cover *Cover `json:"cover,omitempty"`
}

// Video is a trailer or gameplay clip attached to a game.
type Video struct {
	VideoID string `json:"videoId"`
	Name    string `json:"name,omitempty"`
}

// WatchURL returns the public player URL for the video.
func (v Video) WatchURL() string {
	if v.VideoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + v.VideoID
}

// GameResult is the canonical game shape exposed by the service.
type GameResult struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Cover            *Cover        `json:"cover,omitempty"`
	FirstReleaseDate int64         `json:"firstReleaseDate,omitempty"` // epoch seconds
	Summary          string        `json:"summary,omitempty"`
	SimilarGames     []SimilarGame `json:"similarGames,omitempty"`
	Videos           []Video       `json:"videos,omitempty"`
}

// ReleaseYear returns the UTC year of the first release, or 0 when unknown.
func (g GameResult) ReleaseYear() int {
	if g.FirstReleaseDate == 0 {
		return 0
	}
	return time.Unix(g.FirstReleaseDate, 0).UTC().Year()
}

// Video returns the video with the given id, if the game has one.
func (g GameResult) Video(videoID string) (Video, bool) {
	for _, v := range g.Videos {
		if v.VideoID == videoID {
			return v, true
		}
	}
	return Video{}, false
}
