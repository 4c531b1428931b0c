// Package store persists computed menu plans.
//
// Two backends are provided: [FileStore] keeps plans as JSON files under a
// directory (the CLI default), and [MongoStore] keeps them in a MongoDB
// collection for server deployments. Both key plans by their ID.
package store

import (
	"context"

	"github.com/mkuchta/orbit/pkg/menu"
)

// Store is the persistence interface for plans.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists a plan, overwriting any existing plan with the same ID.
	Save(ctx context.Context, p menu.Plan) error

	// Get retrieves a plan by ID. Returns errors.ErrCodePlanNotFound
	// (pkg/errors) when the plan does not exist.
	Get(ctx context.Context, id string) (menu.Plan, error)

	// List returns all stored plans.
	List(ctx context.Context) ([]menu.Plan, error)

	// Delete removes a plan by ID. Deleting a missing plan is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
