package commands

import (
	"context"
	"fmt"
)

// LoadContainerCommandHandler puts containers aboard a registered ship.
type LoadContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewLoadContainerCommandHandler creates a handler for container loading.
func NewLoadContainerCommandHandler(uowFactory ShipUoWFactory) LoadContainerCommandHandler {
	return LoadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle looks the ship up by name and admits the containers. Admission
// errors from the ship are returned wrapped with the ship name, so callers
// can still match errs.ErrCapacityExceeded and errs.ErrOverfill.
func (h *LoadContainerCommandHandler) Handle(ctx context.Context, cmd LoadContainerCommand) error {
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

	if err = ship.LoadContainers(cmd.Containers()...); err != nil {
		return fmt.Errorf("load onto %s: %w", ship.Name(), err)
	}

	if err = shipRepo.Update(ctx, ship); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
