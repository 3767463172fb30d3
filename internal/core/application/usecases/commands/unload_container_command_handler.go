package commands

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
)

// UnloadContainerCommandHandler takes containers off registered ships.
type UnloadContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewUnloadContainerCommandHandler creates a handler for container removal.
func NewUnloadContainerCommandHandler(uowFactory ShipUoWFactory) UnloadContainerCommandHandler {
	return UnloadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the container and returns what was taken off. A serial that
// is not aboard is not an error: the result is simply empty.
func (h *UnloadContainerCommandHandler) Handle(
	ctx context.Context,
	cmd UnloadContainerCommand,
) ([]*cargo.Container, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()
	ship, err := shipRepo.GetByName(ctx, cmd.ShipName())
	if err != nil {
		return nil, err
	}

	removed := ship.UnloadContainer(cmd.Serial())

	if err = shipRepo.Update(ctx, ship); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return removed, nil
}
