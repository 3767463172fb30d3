package commands

import (
	"context"
	"fmt"
)

// EmptyContainerCommandHandler discharges containers aboard registered ships.
// The ship decides whether the residual load still fits its weight ceiling.
type EmptyContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewEmptyContainerCommandHandler creates a handler for emptying containers.
func NewEmptyContainerCommandHandler(uowFactory ShipUoWFactory) EmptyContainerCommandHandler {
	return EmptyContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle unloads the container down to its residual load.
// Returns *errs.ObjectNotFoundError when the container is not aboard and
// *errs.OverfillError when a gas residual would break the weight ceiling.
func (h *EmptyContainerCommandHandler) Handle(ctx context.Context, cmd EmptyContainerCommand) error {
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

	shipRepo := uow.ShipRepository()
	ship, err := shipRepo.GetByName(ctx, cmd.ShipName())
	if err != nil {
		return err
	}

	if _, err = ship.EmptyContainer(cmd.Serial()); err != nil {
		return fmt.Errorf("empty on %s: %w", ship.Name(), err)
	}

	if err = shipRepo.Update(ctx, ship); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
