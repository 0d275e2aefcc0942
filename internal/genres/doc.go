// Package genres defines the Genre value and the Source port used to fetch
// genres, along with the sources genreseek ships with.
//
// # Sources
//
//   - Stub: completes without a value (ErrNoValue); the screen stays loading
//   - Generated: returns Count random genres per call
//   - Catalog: reads UUIDs from a text file (see package catalog)
//   - Failing: returns a fixed error, for exercising the error path
//
// WithLatency wraps any source with an artificial, context-aware delay.
//
// # Errors
//
// Sources return their errors unchanged; callers display them verbatim.
// ErrNoValue is the one sentinel and means "finished, nothing to report".
package genres
