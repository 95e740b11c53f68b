package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Loader serves the catalog from a live source when the API is enabled and falls
// back to the bundled dataset whenever that source fails.
type Loader struct {
	enabled  bool
	source   Source
	fallback Source
}

func NewLoader(enabled bool, source Source) *Loader {
	return &Loader{
		enabled:  enabled,
		source:   source,
		fallback: BundledSource{},
	}
}

// Load returns the catalog. Source failures are logged and never returned; the only
// error is ctx's own once it is done.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	if !l.enabled || l.source == nil {
		return l.bundled(ctx)
	}

	var result Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		links, err := l.source.Sidebar(gctx)
		result.Links = links
		return err
	})
	g.Go(func() error {
		items, err := l.source.Content(gctx)
		result.Items = items
		return err
	})
	err := g.Wait()

	// a caller that went away never gets a result
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Catalog{}, ctxErr
	}
	if err != nil {
		log.Warnf("failed to load catalog from API, serving bundled data: %v", err)
		return l.bundled(ctx)
	}
	return result, nil
}

func (l *Loader) bundled(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	links, _ := l.fallback.Sidebar(ctx)
	items, _ := l.fallback.Content(ctx)
	return Catalog{Links: links, Items: items}, nil
}
