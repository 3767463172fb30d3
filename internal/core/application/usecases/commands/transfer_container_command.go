package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrTransferContainerCommandIsNotConstructed = errors.New(
	"TransferContainerCommand must be created via NewTransferContainerCommand constructor",
)

// TransferContainerCommand represents a request to move a container from one
// ship to another.
//
// Example:
//
//	cmd, err := NewTransferContainerCommand("Aurora", "Borealis", serial)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // both ships are unchanged
//	}
type TransferContainerCommand struct {
	fromShip string
	toShip   string
	serial   kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewTransferContainerCommand creates a command to move the container with
// serial from fromShip to toShip.
func NewTransferContainerCommand(
	fromShip string,
	toShip string,
	serial kernel.SerialNumber,
) (TransferContainerCommand, error) {
	command := TransferContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireShipName(fromShip),
		requireShipName(toShip),
		requireSerial(serial),
	); err != nil {
		return TransferContainerCommand{}, err
	}

	command.fromShip = fromShip
	command.toShip = toShip
	command.serial = serial
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferContainerCommand) Validate() error {
	return c.guard.Validate(ErrTransferContainerCommandIsNotConstructed)
}

// FromShip returns the name of the source ship.
func (c TransferContainerCommand) FromShip() string {
	return c.fromShip
}

// ToShip returns the name of the destination ship.
func (c TransferContainerCommand) ToShip() string {
	return c.toShip
}

// Serial returns the serial number of the container to move.
func (c TransferContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}
