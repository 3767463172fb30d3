package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/pkg/guard"
)

var ErrLoadContainerCommandIsNotConstructed = errors.New(
	"LoadContainerCommand must be created via NewLoadContainerCommand constructor",
)

// LoadContainerCommand represents a request to put one or more containers
// aboard a ship. The containers are admitted as one batch: all or none.
//
// Example:
//
//	cmd, err := NewLoadContainerCommand("Aurora", milk, fish)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    // ship is full
//	}
type LoadContainerCommand struct {
	shipName   string
	containers []*cargo.Container

	guard guard.ConstructorGuard
}

// NewLoadContainerCommand creates a command to load containers onto the named ship.
func NewLoadContainerCommand(shipName string, containers ...*cargo.Container) (LoadContainerCommand, error) {
	command := LoadContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if shipName == "" {
		return LoadContainerCommand{}, ErrShipNameIsRequired
	}
	if len(containers) == 0 {
		return LoadContainerCommand{}, ErrContainerIsRequired
	}
	for _, c := range containers {
		if c == nil {
			return LoadContainerCommand{}, ErrContainerIsRequired
		}
	}

	command.shipName = shipName
	command.containers = containers
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadContainerCommand) Validate() error {
	return c.guard.Validate(ErrLoadContainerCommandIsNotConstructed)
}

// ShipName returns the name of the receiving ship.
func (c LoadContainerCommand) ShipName() string {
	return c.shipName
}

// Containers returns the containers to load.
func (c LoadContainerCommand) Containers() []*cargo.Container {
	return c.containers
}
