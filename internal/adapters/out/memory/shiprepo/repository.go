package shiprepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/vessel"
)

// ErrShipAlreadyRegistered is returned when adding a ship whose ID or name is taken.
var ErrShipAlreadyRegistered = errors.New("ship already registered")

// stagingArea collects ships added inside a transaction until it commits.
type stagingArea interface {
	Stage(ship *vessel.ContainerShip)
	Staged() []*vessel.ContainerShip
}

// MemoryShipRepository implements ShipRepository over a Store.
type MemoryShipRepository struct {
	store *Store
	tx    stagingArea
}

// NewMemoryShipRepository creates a repository over store. With a nil tx,
// Add writes straight into the store; otherwise new ships are staged in tx.
func NewMemoryShipRepository(store *Store, tx stagingArea) *MemoryShipRepository {
	return &MemoryShipRepository{
		store: store,
		tx:    tx,
	}
}

// Add registers a new ship.
func (r *MemoryShipRepository) Add(ctx context.Context, ship *vessel.ContainerShip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ship.Validate(); err != nil {
		return err
	}

	if r.tx == nil {
		return r.store.Insert(ship)
	}

	if err := errors.Join(
		checkUnique(r.store.Snapshot(), ship),
		checkUnique(r.tx.Staged(), ship),
	); err != nil {
		return err
	}

	r.tx.Stage(ship)
	return nil
}

// Update checks that the ship is registered. Ships mutate in place, so
// there is nothing else to write back.
func (r *MemoryShipRepository) Update(ctx context.Context, ship *vessel.ContainerShip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ship.Validate(); err != nil {
		return err
	}

	if _, err := r.Get(ctx, ship.ID()); err != nil {
		return err
	}
	return nil
}

// Get retrieves a ship by ID, including ships staged in the current transaction.
func (r *MemoryShipRepository) Get(ctx context.Context, id kernel.UUID) (*vessel.ContainerShip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if ship := r.store.findByID(id); ship != nil {
		return ship, nil
	}
	if r.tx != nil {
		if ship := findByID(r.tx.Staged(), id); ship != nil {
			return ship, nil
		}
	}
	return nil, notFound("ship", id.String())
}

// GetByName retrieves a ship by name, including ships staged in the current transaction.
func (r *MemoryShipRepository) GetByName(ctx context.Context, name string) (*vessel.ContainerShip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ship := r.store.findByName(name); ship != nil {
		return ship, nil
	}
	if r.tx != nil {
		if ship := findByName(r.tx.Staged(), name); ship != nil {
			return ship, nil
		}
	}
	return nil, notFound("ship", name)
}

// GetAll retrieves the registered ships followed by the ships staged in the
// current transaction.
func (r *MemoryShipRepository) GetAll(ctx context.Context) ([]*vessel.ContainerShip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ships := r.store.Snapshot()
	if r.tx != nil {
		ships = append(ships, r.tx.Staged()...)
	}
	return ships, nil
}
