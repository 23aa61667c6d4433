package navigator

import (
	"slices"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
)

// Phase is the coarse state of the navigator.
type Phase int

const (
	// PhaseIdle is the initial settled state before any search.
	PhaseIdle Phase = iota
	// PhaseSearching is the only in-flight state.
	PhaseSearching
	// PhaseReady holds the results of the latest settled search.
	PhaseReady
	// PhaseErrored holds the message of the latest failed search.
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSearching:
		return "searching"
	case PhaseReady:
		return "ready"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Settled reports whether no search is in flight.
func (p Phase) Settled() bool { return p != PhaseSearching }

// State is a point-in-time copy of everything the UI renders. Err is empty
// when there is no error; SelectedGameID is zero when no game is selected.
type State struct {
	Phase           Phase
	QueryText       string
	Results         []games.GameResult
	News            []news.Item
	Loading         bool
	Err             string
	SelectedGameID  int64
	SelectedVideoID string
}

// SelectedGame returns the selected result, if any.
func (s State) SelectedGame() (games.GameResult, bool) {
	if s.SelectedGameID == 0 {
		return games.GameResult{}, false
	}
	for _, g := range s.Results {
		if g.ID == s.SelectedGameID {
			return g, true
		}
	}
	return games.GameResult{}, false
}

// SelectedVideo returns the selected video of the selected game, if any.
func (s State) SelectedVideo() (games.Video, bool) {
	g, ok := s.SelectedGame()
	if !ok || s.SelectedVideoID == "" {
		return games.Video{}, false
	}
	return g.Video(s.SelectedVideoID)
}

func (s State) clone() State {
	out := s
	out.Results = slices.Clone(s.Results)
	out.News = slices.Clone(s.News)
	return out
}
