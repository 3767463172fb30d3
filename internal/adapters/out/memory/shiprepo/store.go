package shiprepo

import (
	"fmt"
	"sync"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/vessel"
	"cargo/internal/pkg/errs"
)

// Store is the process-wide ship registry shared by every repository and
// unit of work. Ships are kept in registration order.
type Store struct {
	mu    sync.RWMutex
	ships []*vessel.ContainerShip
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{}
}

// Insert registers ships atomically: when any of them clashes with a
// registered ship, or with another one in the same call, none is added.
func (s *Store) Insert(ships ...*vessel.ContainerShip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ship := range ships {
		if err := ship.Validate(); err != nil {
			return err
		}
		if err := checkUnique(s.ships, ship); err != nil {
			return err
		}
		if err := checkUnique(ships[:i], ship); err != nil {
			return err
		}
	}

	s.ships = append(s.ships, ships...)
	return nil
}

// Snapshot returns the registered ships in registration order.
func (s *Store) Snapshot() []*vessel.ContainerShip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*vessel.ContainerShip, len(s.ships))
	copy(out, s.ships)
	return out
}

func (s *Store) findByID(id kernel.UUID) *vessel.ContainerShip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.ships, id)
}

func (s *Store) findByName(name string) *vessel.ContainerShip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByName(s.ships, name)
}

func checkUnique(registered []*vessel.ContainerShip, ship *vessel.ContainerShip) error {
	if findByID(registered, ship.ID()) != nil {
		return fmt.Errorf("%w: ship %s", ErrShipAlreadyRegistered, ship.ID())
	}
	if findByName(registered, ship.Name()) != nil {
		return fmt.Errorf("%w: ship name %q", ErrShipAlreadyRegistered, ship.Name())
	}
	return nil
}

func findByID(ships []*vessel.ContainerShip, id kernel.UUID) *vessel.ContainerShip {
	for _, ship := range ships {
		if ship.ID().IsEqual(id) {
			return ship
		}
	}
	return nil
}

func findByName(ships []*vessel.ContainerShip, name string) *vessel.ContainerShip {
	for _, ship := range ships {
		if ship.Name() == name {
			return ship
		}
	}
	return nil
}

func notFound(param string, id any) error {
	return errs.NewObjectNotFoundError(param, id)
}
