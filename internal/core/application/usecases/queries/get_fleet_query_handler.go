package queries

import (
	"cmp"
	"context"
	"slices"

	"cargo/internal/core/domain/model/vessel"
	"cargo/internal/core/ports"
)

// GetFleetQueryHandler summarizes all registered ships.
type GetFleetQueryHandler struct {
	ships ports.ShipRepository
}

// NewGetFleetQueryHandler creates a handler reading from ships.
func NewGetFleetQueryHandler(ships ports.ShipRepository) GetFleetQueryHandler {
	return GetFleetQueryHandler{ships: ships}
}

// Handle returns one summary per ship, sorted by name.
func (h GetFleetQueryHandler) Handle(ctx context.Context, query GetFleetQuery) ([]ShipSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships, err := h.ships.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fleet := make([]ShipSummary, 0, len(ships))
	for _, ship := range ships {
		fleet = append(fleet, summarize(ship))
	}

	slices.SortStableFunc(fleet, func(a, b ShipSummary) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return fleet, nil
}

func summarize(ship *vessel.ContainerShip) ShipSummary {
	return ShipSummary{
		ID:             ship.ID(),
		Name:           ship.Name(),
		MaxSpeed:       ship.MaxSpeed(),
		ContainerCount: ship.ContainerCount(),
		MaxContainers:  ship.MaxContainers(),
		TotalWeight:    ship.TotalMass() / 1000,
		MaxWeight:      ship.MaxWeight(),
		Description:    ship.Describe(),
	}
}
