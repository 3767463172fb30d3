package services

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/vessel"
)

// ErrSameShip is returned when a transfer names the same ship as source and destination.
var ErrSameShip = vessel.ErrSameShip

// CargoTransfer is a domain service that moves a container from one ship to
// another.
//
// Business rules:
//   - Both ships must be valid and distinct
//   - The container must be aboard the source ship
//   - The destination applies its full admission checks
//   - The container's owner mark moves with it
//   - A failed transfer leaves both ships unchanged
//
// Example usage:
//
//	transfer := services.NewCargoTransfer()
//	moved, err := transfer.Transfer(aurora, borealis, serial)
//	if errors.Is(err, errs.ErrOverfill) {
//	    // destination too heavy, container stays on aurora
//	}
type CargoTransfer struct{}

// NewCargoTransfer creates a new CargoTransfer instance.
func NewCargoTransfer() CargoTransfer {
	return CargoTransfer{}
}

// Transfer moves the container with serial from one ship to another.
//
// Parameters:
//   - from: Ship currently carrying the container
//   - to: Ship receiving the container
//   - serial: Serial number of the container to move
//
// Returns:
//   - *cargo.Container: The moved container
//   - error: ErrSameShip, *errs.ObjectNotFoundError when the container is not on from,
//     or any admission error from the destination
//
// Both ships stay locked while the destination admits the container and the
// source lets it go.
func (CargoTransfer) Transfer(
	from *vessel.ContainerShip,
	to *vessel.ContainerShip,
	serial kernel.SerialNumber,
) (*cargo.Container, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return nil, err
	}

	if from == to || from.IsEqual(to) {
		return nil, ErrSameShip
	}

	return from.TransferContainer(to, serial)
}
