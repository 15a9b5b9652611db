package tables

import "strings"

// Category is a loot category. Values double as reference store table names.
type Category string

// Loot categories
const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryEquipment  Category = "equipment"
	CategoryConsumable Category = "consumable"
	CategoryTreasure   Category = "treasure"
)

// Categories lists the loot categories in draw order.
var Categories = []Category{
	CategoryWeapon,
	CategoryArmor,
	CategoryEquipment,
	CategoryConsumable,
	CategoryTreasure,
}

// FallbackCategory is used when a cumulative draw falls past every weight.
const FallbackCategory = CategoryEquipment

// PermanentCategories are the pools permanent items are drawn from.
var PermanentCategories = []Category{CategoryEquipment, CategoryWeapon, CategoryArmor}

// CreatureType labels the kind of creature that dropped the loot.
type CreatureType string

// Creature types
const (
	CreatureHumanoid  CreatureType = "humanoid"
	CreatureBeast     CreatureType = "beast"
	CreatureUndead    CreatureType = "undead"
	CreatureFiend     CreatureType = "fiend"
	CreatureCelestial CreatureType = "celestial"
)

// DefaultCreatureType is used for unknown creature types.
const DefaultCreatureType = CreatureHumanoid

// CreatureTypes lists the creature types with a loot profile.
var CreatureTypes = []CreatureType{
	CreatureHumanoid,
	CreatureBeast,
	CreatureUndead,
	CreatureFiend,
	CreatureCelestial,
}

// CategoryWeight is the probability of drawing a category.
type CategoryWeight struct {
	Category Category
	Weight   float64
}

// CreatureProfile is the loot category distribution for a creature type.
type CreatureProfile struct {
	Type    CreatureType
	Weights []CategoryWeight
	// Preferred is a subcategory hint for display.
	Preferred []string
}

func weights(weapon, armor, equipment, consumable, treasure float64) []CategoryWeight {
	return []CategoryWeight{
		{CategoryWeapon, weapon},
		{CategoryArmor, armor},
		{CategoryEquipment, equipment},
		{CategoryConsumable, consumable},
		{CategoryTreasure, treasure},
	}
}

var creatureProfiles = map[CreatureType]CreatureProfile{
	CreatureHumanoid: {
		Type:      CreatureHumanoid,
		Weights:   weights(0.3, 0.2, 0.2, 0.2, 0.1),
		Preferred: []string{"weapon", "armor", "potion", "scroll"},
	},
	CreatureBeast: {
		Type:      CreatureBeast,
		Weights:   weights(0.1, 0.05, 0.15, 0.25, 0.45),
		Preferred: []string{"other", "material", "talisman"},
	},
	CreatureUndead: {
		Type:      CreatureUndead,
		Weights:   weights(0.15, 0.1, 0.25, 0.15, 0.35),
		Preferred: []string{"cursed", "necromancy", "poison"},
	},
	CreatureFiend: {
		Type:      CreatureFiend,
		Weights:   weights(0.25, 0.15, 0.3, 0.1, 0.2),
		Preferred: []string{"evocation", "enchantment", "weapon"},
	},
	CreatureCelestial: {
		Type:      CreatureCelestial,
		Weights:   weights(0.2, 0.15, 0.3, 0.2, 0.15),
		Preferred: []string{"divine", "healing", "elixir"},
	},
}

// Profile returns the profile for t. ok is false for unknown types, in which
// case the humanoid profile is returned.
func Profile(t CreatureType) (CreatureProfile, bool) {
	p, ok := creatureProfiles[CreatureType(strings.ToLower(string(t)))]
	if !ok {
		p = creatureProfiles[DefaultCreatureType]
	}
	return CreatureProfile{
		Type:      p.Type,
		Weights:   append([]CategoryWeight(nil), p.Weights...),
		Preferred: append([]string(nil), p.Preferred...),
	}, ok
}

// Rarity tier of an item.
type Rarity string

// Rarity tiers
const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityUnique   Rarity = "unique"
)

// ParseRarity normalizes a rarity trait. Missing rarity means common.
func ParseRarity(s string) Rarity {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RarityCommon
	}
	return Rarity(s)
}

// RarityWeight is the probability of drawing a rarity bucket.
type RarityWeight struct {
	Rarity Rarity
	Weight float64
}

var rarityWeights = []RarityWeight{
	{RarityCommon, 0.6},
	{RarityUncommon, 0.3},
	{RarityRare, 0.08},
	{RarityUnique, 0.02},
}

// RarityWeights returns the rarity draw distribution in draw order.
func RarityWeights() []RarityWeight {
	return append([]RarityWeight(nil), rarityWeights...)
}
