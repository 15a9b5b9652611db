package itempool

//go:generate mockgen -destination=mock/mock_provider.go -package=itempoolmock github.com/KirkDiggler/rpg-compendium/internal/itempool Provider

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

// DefaultLimit is the maximum number of records loaded per category.
const DefaultLimit = 500

// Provider exposes the loaded pools. Ready is the readiness flag; Pools
// refuses with errors.FailedPrecondition until the load has finished.
type Provider interface {
	Ready() bool
	Pools() (*Pools, error)
}

// Config holds the dependencies of a Loader
type Config struct {
	Store refstore.Store
	// Cache is optional.
	Cache itemcache.Repository
	// Limit caps records per category. Zero means DefaultLimit.
	Limit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	if c.Limit < 0 {
		return errors.InvalidArgument("limit cannot be negative")
	}
	return nil
}

// Loader loads every loot category concurrently, reading through the cache
// when one is configured.
type Loader struct {
	store refstore.Store
	cache itemcache.Repository
	limit int

	startOnce sync.Once
	done      chan struct{}
	ready     atomic.Bool

	mu    sync.RWMutex
	pools *Pools
	err   error
}

var _ Provider = (*Loader)(nil)

// NewLoader creates a loader. Nothing is loaded until Start or Wait.
func NewLoader(cfg *Config) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limit := cfg.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return &Loader{
		store: cfg.Store,
		cache: cfg.Cache,
		limit: limit,
		done:  make(chan struct{}),
	}, nil
}

// Start begins loading in the background. Later calls do nothing.
func (l *Loader) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// Wait starts the load if needed and blocks until it finishes or ctx ends.
func (l *Loader) Wait(ctx context.Context) (*Pools, error) {
	l.Start(context.WithoutCancel(ctx))

	select {
	case <-l.done:
		return l.Pools()
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeFailedPrecondition, "item pool is still loading")
	}
}

// Ready reports whether the pools loaded successfully.
func (l *Loader) Ready() bool {
	return l.ready.Load()
}

// Pools returns the loaded pools.
func (l *Loader) Pools() (*Pools, error) {
	select {
	case <-l.done:
	default:
		return nil, errors.FailedPrecondition("item pool is still loading")
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.err != nil {
		return nil, errors.WrapWithCode(l.err, errors.CodeUnavailable, "item pool failed to load")
	}
	return l.pools, nil
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	start := time.Now()
	pools, err := l.load(ctx)

	l.mu.Lock()
	l.pools, l.err = pools, err
	l.mu.Unlock()

	if err != nil {
		slog.ErrorContext(ctx, "failed to load item pool", "error", err)
		return
	}

	l.ready.Store(true)
	slog.InfoContext(ctx, "item pool ready",
		"records", pools.Size(),
		"elapsed", time.Since(start))
}

func (l *Loader) load(ctx context.Context) (*Pools, error) {
	results := make([][]*refstore.Record, len(tables.Categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range tables.Categories {
		g.Go(func() error {
			records, err := l.loadCategory(gctx, category)
			if err != nil {
				return errors.Wrapf(err, "failed to load %s pool", category)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCategory := make(map[tables.Category][]*refstore.Record, len(tables.Categories))
	for i, category := range tables.Categories {
		byCategory[category] = results[i]
	}
	return &Pools{byCategory: byCategory}, nil
}

func (l *Loader) loadCategory(ctx context.Context, category tables.Category) ([]*refstore.Record, error) {
	if l.cache != nil {
		out, err := l.cache.Get(ctx, itemcache.GetInput{Category: category})
		switch {
		case err == nil:
			return out.Records, nil
		case !errors.IsNotFound(err):
			slog.WarnContext(ctx, "item pool cache read failed",
				"category", category,
				"error", err)
		}
	}

	out, err := l.store.List(ctx, refstore.ListInput{
		Table: refstore.Table(category),
		Limit: l.limit,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "loot category table missing, using empty pool", "category", category)
			return nil, nil
		}
		return nil, err
	}

	slog.DebugContext(ctx, "loaded loot category from reference store",
		"category", category,
		"records", len(out.Records))

	if l.cache != nil {
		if _, err := l.cache.Put(ctx, itemcache.PutInput{Category: category, Records: out.Records}); err != nil {
			slog.WarnContext(ctx, "item pool cache write failed",
				"category", category,
				"error", err)
		}
	}

	return out.Records, nil
}

// Static is a Provider over pools that are already loaded.
type Static struct {
	pools *Pools
}

// NewStatic returns a ready Provider for pools.
func NewStatic(pools *Pools) *Static {
	return &Static{pools: pools}
}

// Ready always reports true.
func (s *Static) Ready() bool {
	return true
}

// Pools returns the wrapped pools.
func (s *Static) Pools() (*Pools, error) {
	return s.pools, nil
}
