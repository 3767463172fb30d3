package commands

import (
	"context"
	"fmt"

	"cargo/internal/core/domain/model/cargo"
)

// ReplaceContainerCommandHandler swaps containers aboard registered ships.
type ReplaceContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewReplaceContainerCommandHandler creates a handler for container replacement.
func NewReplaceContainerCommandHandler(uowFactory ShipUoWFactory) ReplaceContainerCommandHandler {
	return ReplaceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle performs the swap and returns the container that was taken off.
func (h *ReplaceContainerCommandHandler) Handle(
	ctx context.Context,
	cmd ReplaceContainerCommand,
) (*cargo.Container, error) {
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

	old, err := ship.ReplaceContainer(cmd.Serial(), cmd.Replacement())
	if err != nil {
		return nil, fmt.Errorf("replace on %s: %w", ship.Name(), err)
	}

	if err = shipRepo.Update(ctx, ship); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return old, nil
}
