package genres

import (
	"context"
	"errors"
	"time"
)

// ErrNoValue reports that a fetch finished without producing a result.
var ErrNoValue = errors.New("no value")

// Source fetches genres. Errors are returned as-is to callers; ErrNoValue
// means the fetch completed with nothing to report.
type Source interface {
	TopGenres(ctx context.Context, query string) ([]Genre, error)
	AllGenres(ctx context.Context, query string) ([]Genre, error)
}

// Ensure implementations satisfy Source at compile time.
var (
	_ Source = Stub{}
	_ Source = Generated{}
	_ Source = (*Catalog)(nil)
	_ Source = Failing{}
	_ Source = delayed{}
)

// Stub never produces a value.
type Stub struct{}

// TopGenres returns ErrNoValue.
func (Stub) TopGenres(context.Context, string) ([]Genre, error) { return nil, ErrNoValue }

// AllGenres returns ErrNoValue.
func (Stub) AllGenres(context.Context, string) ([]Genre, error) { return nil, ErrNoValue }

// Generated returns Count freshly generated genres per call.
type Generated struct {
	Count int
}

// TopGenres ignores query.
func (g Generated) TopGenres(ctx context.Context, _ string) ([]Genre, error) {
	return g.generate(ctx)
}

// AllGenres ignores query.
func (g Generated) AllGenres(ctx context.Context, _ string) ([]Genre, error) {
	return g.generate(ctx)
}

func (g Generated) generate(ctx context.Context) ([]Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Genre, 0, max(g.Count, 0))
	for i := 0; i < g.Count; i++ {
		out = append(out, New())
	}
	return out, nil
}

// Failing fails every call with Err.
type Failing struct {
	Err error
}

func (f Failing) TopGenres(context.Context, string) ([]Genre, error) { return nil, f.Err }

func (f Failing) AllGenres(context.Context, string) ([]Genre, error) { return nil, f.Err }

// WithLatency delays every call on src by d. A cancelled context ends the
// wait early with the context error.
func WithLatency(src Source, d time.Duration) Source {
	if d <= 0 {
		return src
	}
	return delayed{src: src, latency: d}
}

type delayed struct {
	src     Source
	latency time.Duration
}

func (d delayed) TopGenres(ctx context.Context, query string) ([]Genre, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	return d.src.TopGenres(ctx, query)
}

func (d delayed) AllGenres(ctx context.Context, query string) ([]Genre, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	return d.src.AllGenres(ctx, query)
}

func (d delayed) wait(ctx context.Context) error {
	timer := time.NewTimer(d.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
