// Package config handles loading and parsing genreseek configuration files.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/genreseek/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// Values are trimmed, the source kind is lowercased, and paths get ~ expanded
// and made absolute. Load does not validate: callers apply their overrides
// first and then call Validate.
//
// # Default Values
//
//   - Config file: ~/.config/genreseek/config.toml
//   - Source kind: stub
//   - Catalog path: ~/.config/genreseek/genres.txt
//   - Generated count: 8, catalog limit: 50, latency: none
//   - Logging: level info, console format, disabled (no file)
//   - Metrics: disabled
//
// # TOML Format
//
//	[source]
//	kind = "generated"            # stub | generated | catalog
//	catalog_path = "~/genres.txt" # catalog: one UUID per line
//	count = 8                     # generated: genres per load
//	limit = 50                    # catalog: max genres per load, 0 = all
//	latency = "750ms"             # delay before each result
//	fail = ""                     # non-empty: every load fails with this text
//
//	[log]
//	level = "info"                # debug | info | warn | error
//	format = "console"            # console | json
//	file = "~/.local/state/genreseek/genreseek.log"
//
//	[metrics]
//	listen = "127.0.0.1:9464"
//
// # Error Handling
//
// Load returns errors for:
//   - Permission denied or other I/O errors opening the file
//   - Malformed TOML ("parse config")
//   - Unparseable durations
//
// Validate returns errors for:
//   - Unknown source kinds (wraps ErrUnknownSource)
//   - Negative counts, limits and latencies
//
// A missing file is not an error.
package config
