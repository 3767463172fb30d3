package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrReplaceContainerCommandIsNotConstructed = errors.New(
	"ReplaceContainerCommand must be created via NewReplaceContainerCommand constructor",
)

// ReplaceContainerCommand represents a request to swap a container aboard a
// ship for another one at the same position.
type ReplaceContainerCommand struct {
	shipName    string
	serial      kernel.SerialNumber
	replacement *cargo.Container

	guard guard.ConstructorGuard
}

// NewReplaceContainerCommand creates a command that replaces the container
// with serial on the named ship.
func NewReplaceContainerCommand(
	shipName string,
	serial kernel.SerialNumber,
	replacement *cargo.Container,
) (ReplaceContainerCommand, error) {
	command := ReplaceContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errReplacement error
	if replacement == nil {
		errReplacement = ErrContainerIsRequired
	}

	if err := errors.Join(
		requireShipName(shipName),
		requireSerial(serial),
		errReplacement,
	); err != nil {
		return ReplaceContainerCommand{}, err
	}

	command.shipName = shipName
	command.serial = serial
	command.replacement = replacement
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceContainerCommand) Validate() error {
	return c.guard.Validate(ErrReplaceContainerCommandIsNotConstructed)
}

// ShipName returns the name of the ship.
func (c ReplaceContainerCommand) ShipName() string {
	return c.shipName
}

// Serial returns the serial number of the container to take off.
func (c ReplaceContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

// Replacement returns the container to put in its place.
func (c ReplaceContainerCommand) Replacement() *cargo.Container {
	return c.replacement
}
