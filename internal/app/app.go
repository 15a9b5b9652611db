// Package app wires the compendium subsystems together for the CLI.
//
// Subsystems are built on first use so that commands which only process
// text never open the reference database or dial Redis. Tests inject
// doubles with the With* options.
package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
	"github.com/KirkDiggler/rpg-compendium/internal/itempool"
	campaignorch "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-compendium/internal/random"
	"github.com/KirkDiggler/rpg-compendium/internal/redis"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	campaignrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

// App owns the lifetime of every subsystem.
type App struct {
	cfg        *config.Config
	translator *i18n.Translator
	random     random.Source
	clock      clock.Clock

	mu        sync.Mutex
	store     refstore.Store
	redis     redis.Client
	pool      *itempool.Loader
	loot      loot.Service
	campaigns campaignorch.Service

	// closers run in reverse order during Shutdown.
	closers  []func() error
	stopOnce sync.Once
}

// Option configures an App. Use these to inject test doubles.
type Option func(*App)

// WithStore injects a reference store instead of opening the SQLite file.
func WithStore(s refstore.Store) Option {
	return func(a *App) { a.store = s }
}

// WithRedisClient injects a Redis client instead of dialing cfg.RedisAddr.
func WithRedisClient(c redis.Client) Option {
	return func(a *App) { a.redis = c }
}

// WithRandom injects the random source used by the loot generator.
func WithRandom(r random.Source) Option {
	return func(a *App) { a.random = r }
}

// WithLootService injects a loot generator, skipping the item pool load.
func WithLootService(svc loot.Service) Option {
	return func(a *App) { a.loot = svc }
}

// WithCampaignService injects the campaign service, skipping Redis.
func WithCampaignService(svc campaignorch.Service) Option {
	return func(a *App) { a.campaigns = svc }
}

// WithClock injects the clock used for timestamps.
func WithClock(c clock.Clock) Option {
	return func(a *App) { a.clock = c }
}

// New validates cfg and prepares an App. Nothing is opened yet.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := tables.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid lookup tables")
	}

	a := &App{
		cfg:        cfg,
		translator: i18n.Default(),
	}
	for _, o := range opts {
		o(a)
	}

	if a.random == nil {
		a.random = random.NewDiceSource(nil)
	}
	if a.clock == nil {
		a.clock = clock.New()
	}

	return a, nil
}

// Config returns the configuration the App was built with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Language is the configured output language.
func (a *App) Language() i18n.Language {
	return a.cfg.Lang()
}

// Translator returns the UI label catalog.
func (a *App) Translator() *i18n.Translator {
	return a.translator
}

// Store opens the reference store on first use.
func (a *App) Store(ctx context.Context) (refstore.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.storeLocked(ctx)
}

func (a *App) storeLocked(ctx context.Context) (refstore.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	store, err := refstore.NewSQLite(ctx, &refstore.SQLiteConfig{Path: a.cfg.DBPath})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reference database %s", a.cfg.DBPath)
	}
	a.store = store
	a.closers = append(a.closers, store.Close)

	slog.DebugContext(ctx, "opened reference database", "path", a.cfg.DBPath)

	return store, nil
}

// redisLocked dials Redis on first use. It returns nil when no address is
// configured and no client was injected.
func (a *App) redisLocked(ctx context.Context) (redis.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	if !a.cfg.CampaignsEnabled() {
		return nil, nil
	}

	client, err := redis.NewClient(a.cfg.RedisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	a.redis = client
	a.closers = append(a.closers, client.Close)

	slog.DebugContext(ctx, "connected to redis", "addr", a.cfg.RedisAddr)

	return client, nil
}

// Loot returns the loot generator once the item pool has loaded. The load
// starts on the first call and later calls reuse it.
func (a *App) Loot(ctx context.Context) (loot.Service, error) {
	a.mu.Lock()
	if a.loot == nil {
		if err := a.initLootLocked(ctx); err != nil {
			a.mu.Unlock()
			return nil, err
		}
	}
	pool, svc := a.pool, a.loot
	a.mu.Unlock()

	if pool == nil {
		return svc, nil
	}
	if _, err := pool.Wait(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *App) initLootLocked(ctx context.Context) error {
	store, err := a.storeLocked(ctx)
	if err != nil {
		return err
	}

	var cache itemcache.Repository
	client, err := a.redisLocked(ctx)
	if err != nil {
		slog.WarnContext(ctx, "item pool cache disabled", "error", err)
	} else if client != nil {
		cache, err = itemcache.NewRedis(&itemcache.Config{
			Client: client,
			Clock:  a.clock,
			TTL:    a.cfg.CacheTTL,
		})
		if err != nil {
			return err
		}
	}

	pool, err := itempool.NewLoader(&itempool.Config{
		Store: store,
		Cache: cache,
		Limit: a.cfg.PoolLimit,
	})
	if err != nil {
		return err
	}
	pool.Start(context.WithoutCancel(ctx))

	svc, err := loot.NewOrchestrator(&loot.Config{
		Pool:   pool,
		Random: a.random,
	})
	if err != nil {
		return err
	}

	a.pool = pool
	a.loot = svc
	return nil
}

// Campaigns returns the campaign service. Campaigns live in Redis, so this
// fails with errors.FailedPrecondition when no Redis address is configured.
func (a *App) Campaigns(ctx context.Context) (campaignorch.Service, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.campaigns != nil {
		return a.campaigns, nil
	}

	client, err := a.redisLocked(ctx)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.FailedPrecondition("campaigns need a redis address (--redis or COMPENDIUM_REDIS_ADDR)")
	}

	repo, err := campaignrepo.NewRedis(&campaignrepo.Config{Client: client})
	if err != nil {
		return nil, err
	}

	svc, err := campaignorch.NewOrchestrator(&campaignorch.Config{
		Repository:   repo,
		Clock:        a.clock,
		CampaignIDs:  idgen.NewUUID(idgen.PrefixCampaign),
		CharacterIDs: idgen.NewUUID(idgen.PrefixCharacter),
		EncounterIDs: idgen.NewUUID(idgen.PrefixEncounter),
	})
	if err != nil {
		return nil, err
	}

	a.campaigns = svc
	return svc, nil
}

// InvalidateItemCache drops every cached item pool. It is a no-op without
// Redis.
func (a *App) InvalidateItemCache(ctx context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	client, err := a.redisLocked(ctx)
	if err != nil || client == nil {
		return 0, err
	}

	cache, err := itemcache.NewRedis(&itemcache.Config{Client: client, Clock: a.clock, TTL: a.cfg.CacheTTL})
	if err != nil {
		return 0, err
	}
	out, err := cache.Invalidate(ctx, itemcache.InvalidateInput{})
	if err != nil {
		return 0, err
	}
	return out.Removed, nil
}

// Shutdown closes everything that was opened, newest first.
func (a *App) Shutdown() {
	a.stopOnce.Do(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		for i := len(a.closers) - 1; i >= 0; i-- {
			if err := a.closers[i](); err != nil {
				slog.Warn("closer error", "index", i, "error", err)
			}
		}
		a.closers = nil
	})
}
