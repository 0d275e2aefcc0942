// Package search implements the search screen's state, actions and reducer.
//
// # Transitions
//
//	ViewAppeared          status != loading   status = loading, then loadRequested
//	ViewAppeared          status == loading   ignored
//	loadRequested                             fetch top genres for the query
//	loadCompleted(ok L)                       status = none, TopGenres = L
//	loadCompleted(err)    AllGenres present   status = none, error dropped
//	loadCompleted(err)    AllGenres empty     status = error(err)
//	DidTypeQuery(q)                           Query = q
//
// The reducer never performs I/O. Fetching is returned as a state.Effect and
// run by the store; its result comes back as loadCompleted. A source that
// finishes with genres.ErrNoValue produces no follow-up at all, so the status
// stays loading.
//
// Typing a query does not trigger a load and an in-flight fetch is not
// cancelled when the query changes. AllGenres is never fetched.
package search
