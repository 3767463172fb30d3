package queries

import (
	"context"

	"cargo/internal/core/ports"
)

// GetShipQueryHandler reads one ship and its containers.
type GetShipQueryHandler struct {
	ships ports.ShipRepository
}

// NewGetShipQueryHandler creates a handler reading from ships.
func NewGetShipQueryHandler(ships ports.ShipRepository) GetShipQueryHandler {
	return GetShipQueryHandler{ships: ships}
}

// Handle returns the ship read model.
// Returns *errs.ObjectNotFoundError when no ship has the requested name.
func (h GetShipQueryHandler) Handle(ctx context.Context, query GetShipQuery) (GetShipQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipQueryResponse{}, err
	}

	ship, err := h.ships.GetByName(ctx, query.Name())
	if err != nil {
		return GetShipQueryResponse{}, err
	}

	containers := ship.Containers()
	views := make([]ContainerView, 0, len(containers))
	for _, c := range containers {
		views = append(views, ContainerView{
			Serial:      c.SerialNumber(),
			Kind:        c.Kind(),
			Product:     c.ProductType(),
			CurrentLoad: c.CurrentLoad(),
			MaxCapacity: c.MaxCapacity(),
			Weight:      c.Weight(),
			Description: c.Describe(),
		})
	}

	return GetShipQueryResponse{
		Ship:       summarize(ship),
		Containers: views,
	}, nil
}
