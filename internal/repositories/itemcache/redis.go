package itemcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

const (
	// Key pattern: compendium:itempool:{category}
	poolKeyPrefix = "compendium:itempool:"
	defaultTTL    = 24 * time.Hour
)

// Config holds the configuration for the Redis item cache
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is how long a pool stays cached. Zero means 24h.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed item pool cache
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// poolData is what gets serialized to Redis
type poolData struct {
	Category tables.Category `json:"category"`
	CachedAt time.Time       `json:"cached_at"`
	Records  []recordData    `json:"records"`
}

type recordData struct {
	ID            string          `json:"id"`
	Table         refstore.Table  `json:"table"`
	Name          string          `json:"name"`
	System        json.RawMessage `json:"system,omitempty"`
	Description   string          `json:"description,omitempty"`
	DescriptionFR string          `json:"description_fr,omitempty"`
	PublicNotesFR string          `json:"publicnotes_fr,omitempty"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, poolKeyPrefix+string(input.Category)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item pool %s not cached", input.Category)
		}
		return nil, errors.Wrapf(err, "failed to get item pool %s", input.Category)
	}

	var data poolData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item pool %s", input.Category)
	}

	records := make([]*refstore.Record, 0, len(data.Records))
	for _, rec := range data.Records {
		records = append(records, refstore.NewRecord(rec.Table, rec.ID, rec.Name, rec.System,
			rec.Description, rec.DescriptionFR, rec.PublicNotesFR))
	}

	slog.DebugContext(ctx, "item pool cache hit",
		"category", input.Category,
		"records", len(records))

	return &GetOutput{
		Records:  records,
		CachedAt: data.CachedAt,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	data := poolData{
		Category: input.Category,
		CachedAt: now,
		Records:  make([]recordData, 0, len(input.Records)),
	}
	for _, rec := range input.Records {
		if rec == nil {
			continue
		}
		data.Records = append(data.Records, recordData{
			ID:            rec.ID,
			Table:         rec.Table,
			Name:          rec.Name,
			System:        rec.System,
			Description:   rec.Description,
			DescriptionFR: rec.DescriptionFR,
			PublicNotesFR: rec.PublicNotesFR,
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item pool %s", input.Category)
	}

	if err := r.client.Set(ctx, poolKeyPrefix+string(input.Category), payload, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store item pool %s", input.Category)
	}

	return &PutOutput{ExpiresAt: now.Add(r.ttl)}, nil
}

func (r *redisRepository) Invalidate(ctx context.Context, _ InvalidateInput) (*InvalidateOutput, error) {
	keys := make([]string, 0, len(tables.Categories))
	for _, category := range tables.Categories {
		keys = append(keys, poolKeyPrefix+string(category))
	}

	removed, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to invalidate item pools")
	}

	slog.InfoContext(ctx, "invalidated item pool cache", "removed", removed)

	return &InvalidateOutput{Removed: int(removed)}, nil
}

func validateCategory(category tables.Category) error {
	for _, known := range tables.Categories {
		if category == known {
			return nil
		}
	}
	return errors.InvalidArgumentf("unknown item category %q", category)
}
