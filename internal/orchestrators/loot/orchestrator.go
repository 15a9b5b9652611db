// Package loot generates encounter treasure and character starting
// packages from the item pool.
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/itempool"
	"github.com/KirkDiggler/rpg-compendium/internal/random"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

const (
	jitterMin    = 0.85
	jitterSpan   = 0.3
	currencyMin  = 0.4
	currencySpan = 0.2

	// Platinum is only minted from this much currency.
	platinumThreshold = 50
	platinumMin       = 0.05
	platinumSpan      = 0.15
	goldMin           = 0.5
	goldSpan          = 0.3
	// silverShare is the share of the post-gold remainder paid in silver,
	// the rest is copper.
	silverShare = 0.7

	// Item levels range from two below to one above the party level.
	levelsBelow = 2
	levelsAbove = 1
)

// Service defines the interface for loot generation
type Service interface {
	// GenerateLoot rolls treasure for one encounter
	// Returns errors.FailedPrecondition while the item pool is loading
	// Returns errors.InvalidArgument for an unknown difficulty
	GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error)

	// GenerateCharacterPackage picks the permanent items and consumables a
	// new character of the given level starts with
	// Returns errors.FailedPrecondition while the item pool is loading
	GenerateCharacterPackage(ctx context.Context, input *GenerateCharacterPackageInput) (*GenerateCharacterPackageOutput, error)
}

// Config holds the dependencies for the loot orchestrator
type Config struct {
	Pool   itempool.Provider
	Random random.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	return vb.Build()
}

type orchestrator struct {
	pool   itempool.Provider
	random random.Source
}

// NewOrchestrator creates a new loot orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		pool:   cfg.Pool,
		random: cfg.Random,
	}, nil
}

func (o *orchestrator) pools() (*itempool.Pools, error) {
	if !o.pool.Ready() {
		return nil, errors.FailedPrecondition("item pool is not loaded yet")
	}
	return o.pool.Pools()
}

// GenerateLoot rolls coins then spends the rest of the treasure value on items
func (o *orchestrator) GenerateLoot(ctx context.Context, input *GenerateLootInput) (*GenerateLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	difficulty := tables.DifficultyModerate
	if input.Difficulty != "" {
		d, err := tables.ParseDifficulty(string(input.Difficulty))
		if err != nil {
			return nil, err
		}
		difficulty = d
	}

	pools, err := o.pools()
	if err != nil {
		return nil, err
	}

	profile, known := tables.Profile(input.CreatureType)
	if !known && input.CreatureType != "" {
		slog.WarnContext(ctx, "unknown creature type, using default profile",
			"creature_type", input.CreatureType,
			"default", profile.Type)
	}

	level := tables.ClampLevel(input.PartyLevel)
	base := tables.TreasureByEncounter(level).Value(difficulty)
	final := int(math.Floor(float64(base) * (jitterMin + o.random.Float64()*jitterSpan)))
	currency := int(math.Floor(float64(final) * (currencyMin + o.random.Float64()*currencySpan)))

	out := &GenerateLootOutput{
		Level:         level,
		Difficulty:    difficulty,
		CreatureType:  profile.Type,
		BaseValue:     base,
		FinalValue:    final,
		CurrencyValue: currency,
		Coins:         o.coinMix(currency),
		ItemBudget:    wealth.FromGold(final - currency),
	}

	out.Items, out.ItemSpend = o.pickItems(ctx, pools, profile, level, difficulty, out.ItemBudget)

	slog.DebugContext(ctx, "generated loot",
		"level", level,
		"difficulty", difficulty,
		"creature_type", profile.Type,
		"base_gp", base,
		"final_gp", final,
		"currency_gp", currency,
		"items", len(out.Items),
		"item_spend", out.ItemSpend)

	return out, nil
}

// coinMix splits currency gold into platinum, gold, silver and copper
func (o *orchestrator) coinMix(currency int) []CoinLine {
	var coins []CoinLine
	remaining := wealth.FromGold(currency)

	if currency >= platinumThreshold {
		pp := int(math.Floor(float64(currency) * (platinumMin + o.random.Float64()*platinumSpan) / 10))
		if pp > 0 {
			value := wealth.Copper(pp) * wealth.CopperPerPlatinum
			coins = append(coins, CoinLine{Coin: CoinPlatinum, Count: pp, Value: value})
			remaining -= value
		}
	}

	gp := int(math.Floor(float64(remaining.WholeGold()) * (goldMin + o.random.Float64()*goldSpan)))
	if gp > 0 {
		value := wealth.FromGold(gp)
		coins = append(coins, CoinLine{Coin: CoinGold, Count: gp, Value: value})
		remaining -= value
	}

	silverValue := remaining * 7 / 10
	if sp := int(silverValue / wealth.CopperPerSilver); sp > 0 {
		value := wealth.Copper(sp) * wealth.CopperPerSilver
		coins = append(coins, CoinLine{Coin: CoinSilver, Count: sp, Value: value})
		remaining -= value
	}

	if cp := int(remaining); cp > 0 {
		coins = append(coins, CoinLine{Coin: CoinCopper, Count: cp, Value: remaining})
	}

	return coins
}

func (o *orchestrator) pickItems(
	ctx context.Context,
	pools *itempool.Pools,
	profile tables.CreatureProfile,
	level int,
	difficulty tables.Difficulty,
	budget wealth.Copper,
) ([]*Item, wealth.Copper) {
	minLevel := max(tables.MinItemLevel, level-levelsBelow)
	maxLevel := min(tables.MaxLevel, level+levelsAbove)

	var items []*Item
	remaining := budget

	for i := 0; i < tables.ItemCount(difficulty) && remaining > 0; i++ {
		category := o.drawCategory(profile)

		var eligible []*refstore.Record
		for _, r := range pools.Category(category) {
			if r.Attributes.Level >= minLevel && r.Attributes.Level <= maxLevel && r.Attributes.Price <= remaining {
				eligible = append(eligible, r)
			}
		}
		if len(eligible) == 0 {
			slog.DebugContext(ctx, "no eligible items, skipping draw",
				"category", category,
				"min_level", minLevel,
				"max_level", maxLevel,
				"remaining", remaining)
			continue
		}

		item := newItem(category, o.drawByRarity(eligible))
		items = append(items, item)
		remaining -= item.Price
	}

	return items, budget - remaining
}

// drawCategory samples the profile's category weights
func (o *orchestrator) drawCategory(profile tables.CreatureProfile) tables.Category {
	r := o.random.Float64()
	cumulative := 0.0
	for _, w := range profile.Weights {
		cumulative += w.Weight
		if r <= cumulative {
			return w.Category
		}
	}
	return tables.FallbackCategory
}

// drawByRarity samples a rarity bucket and picks uniformly inside it. An
// empty bucket passes the draw to the next one; if none qualifies any
// eligible record is picked.
func (o *orchestrator) drawByRarity(records []*refstore.Record) *refstore.Record {
	buckets := make(map[tables.Rarity][]*refstore.Record)
	for _, rec := range records {
		rarity := rec.Attributes.Rarity
		if rarity == "" {
			rarity = tables.RarityCommon
		}
		buckets[rarity] = append(buckets[rarity], rec)
	}

	r := o.random.Float64()
	cumulative := 0.0
	for _, w := range tables.RarityWeights() {
		cumulative += w.Weight
		if bucket := buckets[w.Rarity]; r <= cumulative && len(bucket) > 0 {
			return bucket[o.random.Intn(len(bucket))]
		}
	}

	return records[o.random.Intn(len(records))]
}

// GenerateCharacterPackage fills every permanent item slot of the level's
// wealth row with a permanent item and a consumable of the slot level
func (o *orchestrator) GenerateCharacterPackage(
	ctx context.Context,
	input *GenerateCharacterPackageInput,
) (*GenerateCharacterPackageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pools, err := o.pools()
	if err != nil {
		return nil, err
	}

	row := tables.CharacterWealthByLevel(input.Level)
	out := &GenerateCharacterPackageOutput{
		Level:    row.Level,
		Currency: row.Currency,
		LumpSum:  row.LumpSum,
		Slots:    row.PermanentItems,
	}

	for _, slot := range row.PermanentItems {
		permanent := atLevel(pools, slot.Level, tables.PermanentCategories...)
		consumables := atLevel(pools, slot.Level, tables.CategoryConsumable)

		for range slot.Count {
			if item := o.pick(permanent); item != nil {
				out.PermanentItems = append(out.PermanentItems, item)
			} else {
				slog.WarnContext(ctx, "no permanent item for slot", "level", slot.Level)
			}
		}
		for range slot.Count {
			if item := o.pick(consumables); item != nil {
				out.Consumables = append(out.Consumables, item)
			} else {
				slog.WarnContext(ctx, "no consumable for slot", "level", slot.Level)
			}
		}
	}

	slog.DebugContext(ctx, "generated character package",
		"level", row.Level,
		"permanent_items", len(out.PermanentItems),
		"consumables", len(out.Consumables))

	return out, nil
}

type candidate struct {
	category tables.Category
	record   *refstore.Record
}

func atLevel(pools *itempool.Pools, level int, categories ...tables.Category) []candidate {
	var out []candidate
	for _, category := range categories {
		for _, r := range pools.Category(category) {
			if r.Attributes.Level == level {
				out = append(out, candidate{category: category, record: r})
			}
		}
	}
	return out
}

func (o *orchestrator) pick(candidates []candidate) *Item {
	if len(candidates) == 0 {
		return nil
	}
	c := candidates[o.random.Intn(len(candidates))]
	return newItem(c.category, c.record)
}
