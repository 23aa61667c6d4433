// Package navigator holds the client-side search state machine. Results,
// selection and loading flags change only through its methods; overlapping
// searches are ordered by a generation counter so a stale response can never
// overwrite a newer one.
package navigator

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// MessageTimeout is shown when a search exceeds its deadline.
const MessageTimeout = "Search timed out. Please try again."

// Options tune a Navigator.
type Options struct {
	// Timeout bounds each search request. Zero disables the bound.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Navigator is safe for concurrent use.
type Navigator struct {
	searcher providers.GameSearcher
	timeout  time.Duration
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	settled    bool
}

// New returns an idle navigator that searches through searcher.
func New(searcher providers.GameSearcher, opts Options) *Navigator {
	return &Navigator{
		searcher: searcher,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
		settled:  true,
	}
}

// Request is one search issued by ExecuteSearch. Do performs its network
// call without touching navigator state, so it can run on any goroutine.
type Request struct {
	Term       string
	generation uint64
	searcher   providers.GameSearcher
	timeout    time.Duration
}

// Outcome is the completed network call for a Request.
type Outcome struct {
	Term       string
	Results    []games.GameResult
	Err        error
	generation uint64
}

// Do runs the search. It never panics on a nil searcher.
func (r Request) Do(ctx context.Context) Outcome {
	out := Outcome{Term: r.Term, generation: r.generation}
	if r.searcher == nil {
		out.Err = errors.New("no search backend configured")
		return out
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	out.Results, out.Err = r.searcher.Search(ctx, r.Term)
	return out
}

// ExecuteSearch enters Searching for term. A blank term is a no-op and
// returns false. Entering Searching clears results, error and both
// selections, and sets the visible query text to term.
func (n *Navigator) ExecuteSearch(term string) (Request, bool) {
	if strings.TrimSpace(term) == "" {
		return Request{}, false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	n.settled = false
	n.state.Phase = PhaseSearching
	n.state.QueryText = term
	n.state.Results = nil
	n.state.Err = ""
	n.state.Loading = true
	n.state.SelectedGameID = 0
	n.state.SelectedVideoID = ""

	return Request{
		Term:       term,
		generation: n.generation,
		searcher:   n.searcher,
		timeout:    n.timeout,
	}, true
}

// FollowSimilar starts a brand-new top-level search for a related title.
func (n *Navigator) FollowSimilar(name string) (Request, bool) {
	return n.ExecuteSearch(name)
}

// Settle applies o if it belongs to the latest search and reports whether
// it did. Stale or duplicate outcomes leave the state untouched.
func (n *Navigator) Settle(o Outcome) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if o.generation != n.generation || n.settled {
		logging.Debug(context.Background(), n.logger, "discarded stale search response",
			slog.String(logging.FieldQuery, o.Term),
			slog.Uint64(logging.FieldGeneration, o.generation))
		return false
	}

	n.settled = true
	n.state.Loading = false
	if o.Err != nil {
		n.state.Phase = PhaseErrored
		n.state.Results = []games.GameResult{}
		n.state.Err = errorMessage(o.Err)
		return true
	}

	results := o.Results
	if results == nil {
		results = []games.GameResult{}
	}
	n.state.Phase = PhaseReady
	n.state.Results = slices.Clone(results)
	n.state.Err = ""
	return true
}

// Search runs ExecuteSearch, the request and Settle synchronously. It
// reports whether the outcome was applied.
func (n *Navigator) Search(ctx context.Context, term string) bool {
	req, ok := n.ExecuteSearch(term)
	if !ok {
		return false
	}
	return n.Settle(req.Do(ctx))
}

// ToggleGame selects id, or deselects it when already selected. Switching
// games always clears the video selection. Ids not among the current
// results are ignored and false is returned.
func (n *Navigator) ToggleGame(id int64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state.SelectedGameID != 0 && n.state.SelectedGameID == id {
		n.state.SelectedGameID = 0
		n.state.SelectedVideoID = ""
		return true
	}
	if !n.hasResultLocked(id) {
		return false
	}
	n.state.SelectedGameID = id
	n.state.SelectedVideoID = ""
	return true
}

// SelectVideo selects a video of the currently selected game. It never
// changes the selected game and returns false when no game is selected or
// the video does not belong to it.
func (n *Navigator) SelectVideo(videoID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	g, ok := n.state.SelectedGame()
	if !ok {
		return false
	}
	if _, ok := g.Video(videoID); !ok {
		return false
	}
	n.state.SelectedVideoID = videoID
	return true
}

// SetNews replaces the sidebar headlines. It does not affect search state.
func (n *Navigator) SetNews(items []news.Item) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.News = append([]news.Item{}, items...)
}

// SetQueryText updates the visible query text without searching.
func (n *Navigator) SetQueryText(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.QueryText = text
}

// Snapshot returns a copy of the current state.
func (n *Navigator) Snapshot() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.clone()
}

// Phase returns the current phase.
func (n *Navigator) Phase() Phase {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.Phase
}

func (n *Navigator) hasResultLocked(id int64) bool {
	if id == 0 {
		return false
	}
	for _, g := range n.state.Results {
		if g.ID == id {
			return true
		}
	}
	return false
}

func errorMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return MessageTimeout
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return providers.MessageFallback
}
