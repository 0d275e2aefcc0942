package search

import (
	"context"
	"errors"

	"github.com/five82/genreseek/internal/genres"
	"github.com/five82/genreseek/internal/state"
)

const topGenresEffect = "top-genres"

// Domain is the search screen's reducer together with its dependencies.
type Domain struct {
	source genres.Source
}

// New returns a Domain fetching from src. A nil src behaves like genres.Stub.
func New(src genres.Source) Domain {
	if src == nil {
		src = genres.Stub{}
	}
	return Domain{source: src}
}

// Store is the state container for the search screen.
type Store = state.Store[State, Action]

// NewStore builds a store with the default state and d's reducer.
func (d Domain) NewStore(opts ...state.Option[State, Action]) *Store {
	opts = append([]state.Option[State, Action]{
		state.WithClone[State, Action](State.Clone),
	}, opts...)
	return state.NewStore(State{}, d.Reduce, opts...)
}

// Reduce applies action to s and returns the follow-up work.
func (d Domain) Reduce(s *State, action Action) state.Effect[Action] {
	switch a := action.(type) {
	case ViewAppeared:
		if s.Status.IsLoading() {
			break
		}
		s.Status = Loading()
		return state.Send[Action](loadRequested{})

	case loadRequested:
		return d.fetchTopGenres(s.Query)

	case loadCompleted:
		if a.Err == nil {
			s.Status = LoadingStatus{}
			s.TopGenres = genres.Clone(a.Genres)
			break
		}
		// Keep showing what we have instead of the error.
		if len(s.AllGenres) > 0 {
			s.Status = LoadingStatus{}
			break
		}
		s.Status = Failed(a.Err)

	case DidTypeQuery:
		s.Query = a.Query
	}

	return state.None[Action]()
}

func (d Domain) fetchTopGenres(query string) state.Effect[Action] {
	src := d.source
	return state.Task(topGenresEffect, func(ctx context.Context) (Action, bool) {
		list, err := src.TopGenres(ctx, query)
		if errors.Is(err, genres.ErrNoValue) {
			return nil, false
		}
		if err != nil {
			return loadCompleted{Err: err}, true
		}
		return loadCompleted{Genres: list}, true
	})
}
