// Package campaign provides the interface for campaign persistence
package campaign

//go:generate mockgen -destination=mock/mock_repository.go -package=campaignmock github.com/KirkDiggler/rpg-compendium/internal/repositories/campaign Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	// Create stores a new campaign
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a campaign with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a campaign by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing campaign
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the campaign doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a campaign
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns all campaigns, most recently created first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a campaign
type CreateInput struct {
	Campaign *entities.Campaign
}

// CreateOutput defines the output for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// GetInput defines the input for getting a campaign
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// UpdateInput defines the input for updating a campaign
type UpdateInput struct {
	Campaign *entities.Campaign
}

// UpdateOutput defines the output for updating a campaign
type UpdateOutput struct {
	Campaign *entities.Campaign
}

// DeleteInput defines the input for deleting a campaign
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a campaign
type DeleteOutput struct{}

// ListInput defines the input for listing campaigns
type ListInput struct{}

// ListOutput defines the output for listing campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}
