// Package ports defines the contracts between the cargo domain and the
// infrastructure that stores ships.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/vessel"
)

// ShipRepository defines the storage contract for ship aggregates.
// Ships own their containers, so storing a ship stores its cargo.
type ShipRepository interface {
	// Add registers a new ship.
	// The ship must be valid and its ID and name must not be registered yet.
	Add(ctx context.Context, ship *vessel.ContainerShip) error

	// Update records changes to an already registered ship.
	Update(ctx context.Context, ship *vessel.ContainerShip) error

	// Get retrieves a ship by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no ship has that ID.
	Get(ctx context.Context, id kernel.UUID) (*vessel.ContainerShip, error)

	// GetByName retrieves a ship by its name. Names are unique in the fleet.
	// Returns *errs.ObjectNotFoundError when no ship has that name.
	//
	// Example:
	//   ship, err := repo.GetByName(ctx, "Aurora")
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return fmt.Errorf("unknown ship: %w", err)
	//   }
	GetByName(ctx context.Context, name string) (*vessel.ContainerShip, error)

	// GetAll retrieves every registered ship in registration order.
	GetAll(ctx context.Context) ([]*vessel.ContainerShip, error)
}
