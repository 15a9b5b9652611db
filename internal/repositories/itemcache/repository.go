// Package itemcache caches the loot item pools loaded from the reference
// database so later runs skip the table scans.
package itemcache

//go:generate mockgen -destination=mock/mock_repository.go -package=itemcachemock github.com/KirkDiggler/rpg-compendium/internal/repositories/itemcache Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

// Repository defines the item pool cache
type Repository interface {
	// Get returns the cached pool for a category
	// Returns errors.InvalidArgument for an unknown category
	// Returns errors.NotFound on a cache miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the pool for a category, replacing any previous entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Invalidate drops every cached pool
	Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error)
}

// GetInput defines the input for reading a cached pool
type GetInput struct {
	Category tables.Category
}

// GetOutput defines the output for reading a cached pool
type GetOutput struct {
	Records  []*refstore.Record
	CachedAt time.Time
}

// PutInput defines the input for caching a pool
type PutInput struct {
	Category tables.Category
	Records  []*refstore.Record
}

// PutOutput defines the output for caching a pool
type PutOutput struct {
	ExpiresAt time.Time
}

// InvalidateInput defines the input for dropping cached pools
type InvalidateInput struct{}

// InvalidateOutput defines the output for dropping cached pools
type InvalidateOutput struct {
	Removed int
}
