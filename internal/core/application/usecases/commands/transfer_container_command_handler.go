package commands

import (
	"context"

	"cargo/internal/core/domain/services"
)

// TransferContainerCommandHandler moves containers between registered ships
// using the CargoTransfer domain service.
type TransferContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewTransferContainerCommandHandler creates a handler for container transfers.
func NewTransferContainerCommandHandler(uowFactory ShipUoWFactory) TransferContainerCommandHandler {
	return TransferContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads both ships and moves the container. Both ships are updated
// within a single transaction.
func (h *TransferContainerCommandHandler) Handle(ctx context.Context, cmd TransferContainerCommand) error {
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
	from, err := shipRepo.GetByName(ctx, cmd.FromShip())
	if err != nil {
		return err
	}

	to, err := shipRepo.GetByName(ctx, cmd.ToShip())
	if err != nil {
		return err
	}

	if _, err = services.NewCargoTransfer().Transfer(from, to, cmd.Serial()); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, from); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, to); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
