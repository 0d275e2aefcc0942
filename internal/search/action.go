package search

import (
	"github.com/five82/genreseek/internal/genres"
	"github.com/five82/genreseek/internal/state"
)

// Action is an event handled by the search reducer. The set is closed:
// ViewAppeared and DidTypeQuery come from the view; the load actions are
// produced internally by effects and cannot be built outside this package.
type Action interface {
	state.Action
	searchAction()
}

// ViewAppeared is sent when the screen becomes visible.
type ViewAppeared struct{}

// DidTypeQuery is sent when the query text changes.
type DidTypeQuery struct {
	Query string
}

type loadRequested struct{}

// loadCompleted carries the fetch result. Err non-nil means failure.
type loadCompleted struct {
	Genres []genres.Genre
	Err    error
}

func (ViewAppeared) ActionName() string  { return "view_appeared" }
func (DidTypeQuery) ActionName() string  { return "did_type_query" }
func (loadRequested) ActionName() string { return "load_requested" }

func (a loadCompleted) ActionName() string {
	if a.Err != nil {
		return "load_failed"
	}
	return "load_succeeded"
}

func (ViewAppeared) searchAction()  {}
func (DidTypeQuery) searchAction()  {}
func (loadRequested) searchAction() {}
func (loadCompleted) searchAction() {}
