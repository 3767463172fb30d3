package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrEmptyContainerCommandIsNotConstructed = errors.New(
	"EmptyContainerCommand must be created via NewEmptyContainerCommand constructor",
)

// EmptyContainerCommand represents a request to discharge the cargo of a
// container while it stays aboard its ship.
type EmptyContainerCommand struct {
	shipName string
	serial   kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewEmptyContainerCommand creates a command to empty the container with
// serial aboard the named ship.
func NewEmptyContainerCommand(shipName string, serial kernel.SerialNumber) (EmptyContainerCommand, error) {
	command := EmptyContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireShipName(shipName),
		requireSerial(serial),
	); err != nil {
		return EmptyContainerCommand{}, err
	}

	command.shipName = shipName
	command.serial = serial
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EmptyContainerCommand) Validate() error {
	return c.guard.Validate(ErrEmptyContainerCommandIsNotConstructed)
}

// ShipName returns the name of the ship.
func (c EmptyContainerCommand) ShipName() string {
	return c.shipName
}

// Serial returns the serial number of the container to empty.
func (c EmptyContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}
