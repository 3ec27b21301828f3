// Package sheets persists generated character sheets
package sheets

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/npc-generator/internal/engine"
)

// EntityType identifies saved sheets as toolkit entities
const EntityType = "npc_sheet"

// Sheet is a saved character
type Sheet struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Seed      uint64               `json:"seed,omitempty"`
	Groups    []engine.GroupValues `json:"groups"`
}

// Ensure Sheet implements core.Entity
var _ core.Entity = (*Sheet)(nil)

// GetID returns the sheet ID
func (s *Sheet) GetID() string {
	return s.ID
}

// GetType returns the entity type of saved sheets
func (s *Sheet) GetType() string {
	return EntityType
}

// Character returns the sheet's groups as a character
func (s *Sheet) Character() *engine.Character {
	return &engine.Character{Groups: s.Groups}
}

// Saver stores new sheets
type Saver interface {
	// Create stores a sheet, assigning its ID and creation time when unset
	// Returns errors.InvalidArgument for a nil sheet
	// Returns errors.AlreadyExists if a sheet with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
}

// Repository defines the interface for sheet persistence
type Repository interface {
	Saver

	// Get retrieves a sheet by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the sheet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns saved sheets, most recent first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a sheet by ID
	// Returns errors.NotFound if the sheet doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Sheet *Sheet
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Sheet *Sheet
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Sheet *Sheet
}

// ListInput defines the input for listing sheets. A zero Limit lists all.
type ListInput struct {
	Limit int
}

// ListOutput defines the output for listing sheets
type ListOutput struct {
	Sheets []*Sheet
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}
