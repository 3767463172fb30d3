package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetShipQueryIsNotConstructed = errors.New(
		"GetShipQuery must be created via NewGetShipQuery constructor",
	)
	ErrShipNameIsRequired = errors.New("ship name is required")
)

// GetShipQuery retrieves one ship together with its cargo manifest.
type GetShipQuery struct {
	name string

	guard guard.ConstructorGuard
}

// NewGetShipQuery creates a query for the ship called name.
func NewGetShipQuery(name string) (GetShipQuery, error) {
	if name == "" {
		return GetShipQuery{}, ErrShipNameIsRequired
	}
	return GetShipQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipQuery) Validate() error {
	return q.guard.Validate(ErrGetShipQueryIsNotConstructed)
}

// Name returns the requested ship name.
func (q GetShipQuery) Name() string {
	return q.name
}

// GetShipQueryResponse is the read model of a ship and its containers,
// listed in loading order.
type GetShipQueryResponse struct {
	Ship       ShipSummary
	Containers []ContainerView
}

// ContainerView is the read model of one container aboard a ship.
// Masses are in kilograms.
type ContainerView struct {
	Serial      kernel.SerialNumber
	Kind        kernel.Kind
	Product     string
	CurrentLoad float64
	MaxCapacity float64
	Weight      float64
	Description string
}
