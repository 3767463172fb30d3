package commands

import (
	"context"

	"cargo/internal/core/domain/model/vessel"
)

// CreateShipCommandHandler registers new ships in the fleet.
//
// Example:
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipCommand("Aurora", 22, 4, 60)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ship registration failed: %w", err)
//	}
type CreateShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewCreateShipCommandHandler creates a handler for ship registration.
func NewCreateShipCommandHandler(uowFactory ShipUoWFactory) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the ship and adds it to the repository within a transaction.
// Rolls back on any error so a failed registration leaves the fleet as it was.
func (h *CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ship, err := vessel.NewContainerShip(
		cmd.ShipID(), cmd.Name(), cmd.MaxSpeed(), cmd.MaxContainers(), cmd.MaxWeight(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipRepository().Add(ctx, ship); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
