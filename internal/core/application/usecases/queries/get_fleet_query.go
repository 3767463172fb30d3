// Package queries contains read operations for retrieving fleet state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return plain read models detached from the aggregates.
package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery retrieves a summary of every registered ship.
//
// Example:
//
//	query := NewGetFleetQuery()
//	handler := NewGetFleetQueryHandler(shipRepo)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, ship := range fleet {
//	    fmt.Println(ship.Description)
//	}
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query to retrieve all ships.
func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// ShipSummary is the read model of one ship.
type ShipSummary struct {
	ID             kernel.UUID
	Name           string
	MaxSpeed       float64
	ContainerCount int
	MaxContainers  int
	// TotalWeight is in tonnes, like MaxWeight.
	TotalWeight float64
	MaxWeight   float64
	Description string
}
