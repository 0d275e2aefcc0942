package genres

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/genreseek/internal/catalog"
)

// maxCatalogEntries bounds how much of a catalog file is read per call.
const maxCatalogEntries = 10000

// Catalog serves genres listed in a text file, one UUID per line. The file is
// re-read on every call so edits show up on the next load.
type Catalog struct {
	Path  string
	Limit int // zero means no limit
}

// TopGenres returns catalog genres whose ID contains query (case-insensitive),
// capped at Limit.
func (c *Catalog) TopGenres(ctx context.Context, query string) ([]Genre, error) {
	all, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []Genre
	for _, g := range all {
		if needle != "" && !strings.Contains(g.String(), needle) {
			continue
		}
		out = append(out, g)
		if c.Limit > 0 && len(out) == c.Limit {
			break
		}
	}
	return out, nil
}

// AllGenres returns every catalog genre, ignoring query and Limit.
func (c *Catalog) AllGenres(ctx context.Context, _ string) ([]Genre, error) {
	return c.load(ctx)
}

func (c *Catalog) load(ctx context.Context) ([]Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := catalog.Read(c.Path, maxCatalogEntries)
	if err != nil {
		return nil, err
	}
	out := make([]Genre, 0, len(entries))
	for _, e := range entries {
		g, err := Parse(e.Text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", c.Path, e.Line, err)
		}
		out = append(out, g)
	}
	return out, nil
}
