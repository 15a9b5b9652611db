// Package itempool loads the loot category pools once per process and
// exposes their availability to the generators.
package itempool

import (
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

// Pools is an immutable snapshot of the item records per loot category.
// Callers must not modify the returned slices.
type Pools struct {
	byCategory map[tables.Category][]*refstore.Record
}

// NewPools builds a snapshot from per-category records.
func NewPools(byCategory map[tables.Category][]*refstore.Record) *Pools {
	copied := make(map[tables.Category][]*refstore.Record, len(byCategory))
	for category, records := range byCategory {
		copied[category] = append([]*refstore.Record(nil), records...)
	}
	return &Pools{byCategory: copied}
}

// Category returns the records of one category, nil when it is empty.
func (p *Pools) Category(category tables.Category) []*refstore.Record {
	if p == nil {
		return nil
	}
	return p.byCategory[category]
}

// Size returns the total record count.
func (p *Pools) Size() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, records := range p.byCategory {
		n += len(records)
	}
	return n
}
