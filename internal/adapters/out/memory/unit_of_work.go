// Package memory provides the in-process implementation of the Unit of Work
// pattern over the ship registry.
//
// A unit of work stages newly added ships and publishes them to the shared
// Store on Commit; Rollback drops them. Changes to ships that are already
// registered are applied by the aggregates themselves, which reject an
// operation as a whole, so there is nothing to undo for them.
//
// Usage:
//
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipRepository().Add(ctx, ship); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"cargo/internal/adapters/out/memory/shiprepo"
	"cargo/internal/core/domain/model/vessel"
	"cargo/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside of Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances sharing one Store.
type UnitOfWorkFactory struct {
	store *shiprepo.Store
}

// NewUnitOfWorkFactory creates a factory over store.
func NewUnitOfWorkFactory(store *shiprepo.Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork with its own staging area.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages ship registrations between Begin and Commit.
type UnitOfWork struct {
	store *shiprepo.Store

	mu      sync.Mutex
	active  bool
	pending []*vessel.ContainerShip
}

// Begin starts a transaction. Calling it again while active is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.active = true
	return nil
}

// Commit publishes the staged ships to the store. When the store refuses
// them the transaction is closed and nothing is published.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return ErrNoActiveTransaction
	}

	err := uow.store.Insert(uow.pending...)
	uow.reset()
	return err
}

// Rollback drops the staged ships.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

// ShipRepository provides ship access within the unit of work. Outside of a
// transaction the repository writes straight into the store.
func (uow *UnitOfWork) ShipRepository() ports.ShipRepository {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if !uow.active {
		return shiprepo.NewMemoryShipRepository(uow.store, nil)
	}
	return shiprepo.NewMemoryShipRepository(uow.store, uow)
}

// Stage records a ship to publish on Commit.
func (uow *UnitOfWork) Stage(ship *vessel.ContainerShip) {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.pending = append(uow.pending, ship)
}

// Staged returns the ships waiting for Commit.
func (uow *UnitOfWork) Staged() []*vessel.ContainerShip {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	return slices.Clone(uow.pending)
}

func (uow *UnitOfWork) reset() {
	uow.active = false
	uow.pending = nil
}
