package campaign

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	// Key pattern: compendium:campaign:{id}
	campaignKeyPrefix = "compendium:campaign:"
	// Sorted set of campaign ids scored by creation time
	campaignIndexKey = "compendium:campaigns"

	errCampaignNil     = "campaign cannot be nil"
	errCampaignIDEmpty = "campaign ID cannot be empty"
)

// Config holds the configuration for the Redis campaign repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed campaign repository
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	key := campaignKeyPrefix + input.Campaign.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("campaign with ID %s already exists", input.Campaign.ID)
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, campaignIndexKey, redis.Z{
		Score:  float64(input.Campaign.CreatedAt.Unix()),
		Member: input.Campaign.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create campaign")
	}

	slog.DebugContext(ctx, "created campaign",
		"campaign_id", input.Campaign.ID,
		"name", input.Campaign.Name)

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	result, err := r.client.Get(ctx, campaignKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get campaign")
	}

	var c entities.Campaign
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal campaign")
	}

	return &GetOutput{Campaign: &c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	key := campaignKeyPrefix + input.Campaign.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("campaign with ID %s not found", input.Campaign.ID)
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update campaign")
	}

	return &UpdateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, campaignKeyPrefix+input.ID)
	pipe.ZRem(ctx, campaignIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete campaign")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRevRange(ctx, campaignIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read campaign index")
	}

	campaigns := make([]*entities.Campaign, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "campaign not found, cleaning up index",
					"campaign_id", id)
				r.client.ZRem(ctx, campaignIndexKey, id)
				continue
			}
			return nil, err
		}
		campaigns = append(campaigns, out.Campaign)
	}

	slog.DebugContext(ctx, "listed campaigns", "count", len(campaigns))

	return &ListOutput{Campaigns: campaigns}, nil
}

func validateCampaign(c *entities.Campaign) error {
	if c == nil {
		return errors.InvalidArgument(errCampaignNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCampaignIDEmpty)
	}
	return nil
}
