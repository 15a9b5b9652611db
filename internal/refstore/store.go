// Package refstore provides read-only access to the reference database of
// spells, feats, actions, hazards, items and creatures.
package refstore

//go:generate mockgen -destination=mock/mock_store.go -package=refstoremock github.com/KirkDiggler/rpg-compendium/internal/refstore Store

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Table is a record table in the reference database.
type Table string

// Reference tables
const (
	TableSpell      Table = "spell"
	TableFeat       Table = "feat"
	TableAction     Table = "action"
	TableHazard     Table = "hazard"
	TableEquipment  Table = "equipment"
	TableWeapon     Table = "weapon"
	TableArmor      Table = "armor"
	TableConsumable Table = "consumable"
	TableTreasure   Table = "treasure"
	TableNPC        Table = "npc"
)

// Tables is the whitelist of queryable tables. Table names are only ever
// interpolated into SQL after passing through this list.
var Tables = []Table{
	TableSpell,
	TableFeat,
	TableAction,
	TableHazard,
	TableEquipment,
	TableWeapon,
	TableArmor,
	TableConsumable,
	TableTreasure,
	TableNPC,
}

// SearchTables are the tables searched when a search names none.
var SearchTables = []Table{
	TableSpell,
	TableFeat,
	TableAction,
	TableHazard,
	TableEquipment,
	TableWeapon,
	TableArmor,
	TableConsumable,
	TableNPC,
}

// ParseTable validates a table name against the whitelist.
func ParseTable(s string) (Table, error) {
	t := Table(strings.ToLower(strings.TrimSpace(s)))
	if t == "creature" || t == "monster" {
		return TableNPC, nil
	}
	for _, known := range Tables {
		if t == known {
			return t, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown table %q", s)
}

// Store defines read access to the reference database
type Store interface {
	// Get retrieves a single record by id
	// Returns errors.InvalidArgument for an empty id or unknown table
	// Returns errors.NotFound if the record or table does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns records of one table ordered by name
	// Returns errors.InvalidArgument for an unknown table or bad filter
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Search matches names (and French descriptions) across tables and ranks
	// the results by similarity to the query. Missing tables are skipped.
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// Close releases the database handle
	Close() error
}

// GetInput defines the input for getting a record
type GetInput struct {
	Table Table
	ID    string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *Record
}

// ListInput defines the filters for listing records. Filters of the same
// kind are OR'ed; different kinds are AND'ed.
type ListInput struct {
	Table      Table
	Levels     []int
	Traits     []string
	Traditions []string
	// Source filters creatures by publication. Only valid for TableNPC.
	Source MonsterSource
	// Limit caps the result count. Zero means DefaultListLimit.
	Limit int
}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*Record
}

// SearchInput defines a cross-table search
type SearchInput struct {
	// Query is matched as a substring. "*" returns every record.
	Query  string
	Tables []Table
	// Limit caps the merged result count. Zero means no cap beyond the
	// per-table limit.
	Limit int
}

// SearchOutput defines the ranked search results
type SearchOutput struct {
	Records []*Record
}

// Query limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 5000

	searchPerTableLimit = 10
	browsePerTableLimit = 50
)
