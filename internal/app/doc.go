// Package app is the composition root for genreseek.
//
// Run loads the config, applies command-line overrides, opens the file
// logger and builds the configured genre source. It then starts three
// goroutines under one errgroup:
//
//   - the search store's delivery loop (state.Store.Run)
//   - the optional Prometheus endpoint (metrics.Serve)
//   - the Bubble Tea screen (ui.Run)
//
// Quitting the screen cancels the group, which stops the store and the
// metrics server. A signal on the parent context does the same.
//
// Errors before the screen starts (bad config, unknown source kind,
// unwritable log file) are returned without touching the terminal.
package app
