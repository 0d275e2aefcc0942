package search

import (
	"github.com/five82/genreseek/internal/genres"
)

// StatusKind enumerates the data loading states.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusLoading
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// LoadingStatus is none, loading, or error carrying the fetch error.
type LoadingStatus struct {
	Kind StatusKind
	Err  error
}

// Loading returns the loading status.
func Loading() LoadingStatus {
	return LoadingStatus{Kind: StatusLoading}
}

// Failed returns an error status holding err.
func Failed(err error) LoadingStatus {
	return LoadingStatus{Kind: StatusError, Err: err}
}

// IsLoading reports whether a load is in flight.
func (s LoadingStatus) IsLoading() bool {
	return s.Kind == StatusLoading
}

// Equal compares kinds and, for errors, their messages.
func (s LoadingStatus) Equal(other LoadingStatus) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind != StatusError {
		return true
	}
	return errText(s.Err) == errText(other.Err)
}

func (s LoadingStatus) String() string {
	if s.Kind == StatusError {
		return "error(" + errText(s.Err) + ")"
	}
	return s.Kind.String()
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// State is everything the search screen renders.
type State struct {
	Query     string
	TopGenres []genres.Genre
	AllGenres []genres.Genre
	Status    LoadingStatus
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.TopGenres = genres.Clone(s.TopGenres)
	s.AllGenres = genres.Clone(s.AllGenres)
	return s
}

// Equal reports field-wise equality.
func (s State) Equal(other State) bool {
	return s.Query == other.Query &&
		genres.Equal(s.TopGenres, other.TopGenres) &&
		genres.Equal(s.AllGenres, other.AllGenres) &&
		s.Status.Equal(other.Status)
}
