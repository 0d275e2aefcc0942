package app

import (
	"errors"
	"fmt"

	"github.com/five82/genreseek/internal/config"
	"github.com/five82/genreseek/internal/genres"
)

// NewSource builds the genre source described by cfg.
func NewSource(cfg config.Source) (genres.Source, error) {
	var src genres.Source
	switch cfg.Kind {
	case config.SourceStub:
		src = genres.Stub{}
	case config.SourceGenerated:
		src = genres.Generated{Count: cfg.Count}
	case config.SourceCatalog:
		src = &genres.Catalog{Path: cfg.CatalogPath, Limit: cfg.Limit}
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownSource, cfg.Kind)
	}

	if cfg.Fail != "" {
		src = genres.Failing{Err: errors.New(cfg.Fail)}
	}
	return genres.WithLatency(src, cfg.Latency), nil
}
