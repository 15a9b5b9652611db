package loot

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// Coin is a currency denomination.
type Coin string

// Denominations from most to least valuable
const (
	CoinPlatinum Coin = "platinum"
	CoinGold     Coin = "gold"
	CoinSilver   Coin = "silver"
	CoinCopper   Coin = "copper"
)

// CoinLine is one emitted pile of coins.
type CoinLine struct {
	Coin  Coin
	Count int
	Value wealth.Copper
}

// Item is a generated item drawn from the item pool.
type Item struct {
	ID       string
	Name     string
	Category tables.Category
	// Kind is the record's own category attribute, e.g. "martial".
	Kind   string
	Level  int
	Rarity tables.Rarity
	Price  wealth.Copper
}

var _ core.Entity = (*Item)(nil)

// GetID implements core.Entity
func (i *Item) GetID() string {
	return i.ID
}

// GetType implements core.Entity
func (i *Item) GetType() string {
	return string(i.Category)
}

func newItem(category tables.Category, r *refstore.Record) *Item {
	return &Item{
		ID:       r.ID,
		Name:     r.Name,
		Category: category,
		Kind:     r.Attributes.Category,
		Level:    r.Attributes.Level,
		Rarity:   r.Attributes.Rarity,
		Price:    r.Attributes.Price,
	}
}

// GenerateLootInput defines the request for generating encounter loot
type GenerateLootInput struct {
	PartyLevel int
	// Difficulty defaults to moderate when empty.
	Difficulty tables.Difficulty
	// CreatureType falls back to humanoid when unknown.
	CreatureType tables.CreatureType
}

// GenerateLootOutput defines the generated loot
type GenerateLootOutput struct {
	// Level is the clamped party level used for every lookup.
	Level        int
	Difficulty   tables.Difficulty
	CreatureType tables.CreatureType
	// BaseValue and FinalValue are in gold, before and after jitter.
	BaseValue  int
	FinalValue int
	// CurrencyValue is the gold share paid out as coins.
	CurrencyValue int
	Coins         []CoinLine
	// ItemBudget is the part of FinalValue left for items.
	ItemBudget wealth.Copper
	Items      []*Item
	// ItemSpend is the summed price of Items, never above ItemBudget.
	ItemSpend wealth.Copper
}

// CoinTotal sums the value of all coin lines.
func (o *GenerateLootOutput) CoinTotal() wealth.Copper {
	var total wealth.Copper
	for _, c := range o.Coins {
		total += c.Value
	}
	return total
}

// TotalValue is the coin value plus the item spend.
func (o *GenerateLootOutput) TotalValue() wealth.Copper {
	return o.CoinTotal() + o.ItemSpend
}

// GenerateCharacterPackageInput defines the request for a starting package
type GenerateCharacterPackageInput struct {
	Level int
}

// GenerateCharacterPackageOutput defines a generated character package
type GenerateCharacterPackageOutput struct {
	Level int
	// Currency and LumpSum are in gold.
	Currency       int
	LumpSum        int
	Slots          []tables.ItemSlot
	PermanentItems []*Item
	Consumables    []*Item
}
