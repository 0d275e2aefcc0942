// Package ui provides the Bubble Tea search screen.
//
// The Model never changes search state itself. It subscribes to the
// search store, renders whatever state arrives, and turns user input into
// actions:
//
//   - Init sends ViewAppeared once
//   - every edit of the query input sends DidTypeQuery
//   - ctrl+u clears the query and sends DidTypeQuery with ""
//
// The body mirrors the loading status. While loading, a spinner replaces
// the search view and input is ignored. On failure the error text is shown
// verbatim. Otherwise the query input sits above the top and all genre
// lists.
//
// ctrl+t cycles the theme and saves it to the prefs file. The screen quits
// on esc or ctrl+c, when the program context is cancelled, or when the
// store shuts down and closes the subscription.
package ui
