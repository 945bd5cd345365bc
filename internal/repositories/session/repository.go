// Package session stores tale sessions. Sessions live only as long as the
// process.
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-tale/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
)

// Repository defines storage for tale sessions. Implementations store and
// return copies, so callers may mutate what they get.
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session
	// Returns errors.NotFound if the session doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *entities.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *entities.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *entities.Session
}

// UpdateInput defines the input for updating a session
type UpdateInput struct {
	Session *entities.Session
}

// UpdateOutput defines the output for updating a session
type UpdateOutput struct {
	Session *entities.Session
}
