package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrUnloadContainerCommandIsNotConstructed = errors.New(
	"UnloadContainerCommand must be created via NewUnloadContainerCommand constructor",
)

// UnloadContainerCommand represents a request to take a container off a ship.
type UnloadContainerCommand struct {
	shipName string
	serial   kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewUnloadContainerCommand creates a command to remove the container with
// serial from the named ship.
func NewUnloadContainerCommand(shipName string, serial kernel.SerialNumber) (UnloadContainerCommand, error) {
	command := UnloadContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireShipName(shipName),
		requireSerial(serial),
	); err != nil {
		return UnloadContainerCommand{}, err
	}

	command.shipName = shipName
	command.serial = serial
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnloadContainerCommandIsNotConstructed)
}

// ShipName returns the name of the ship.
func (c UnloadContainerCommand) ShipName() string {
	return c.shipName
}

// Serial returns the serial number of the container to remove.
func (c UnloadContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func requireShipName(name string) error {
	if name == "" {
		return ErrShipNameIsRequired
	}
	return nil
}

func requireSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return errors.Join(ErrSerialIsRequired, err)
	}
	return nil
}
