package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateShipCommandIsNotConstructed = errors.New(
		"CreateShipCommand must be created via NewCreateShipCommand constructor",
	)
	ErrMaxSpeedIsInvalid      = errors.New("max speed must not be negative")
	ErrMaxContainersIsInvalid = errors.New("max containers must be greater than 0")
	ErrMaxWeightIsInvalid     = errors.New("max weight must be greater than 0")
)

// CreateShipCommand represents a request to register a new ship in the fleet.
//
// Example:
//
//	cmd, err := NewCreateShipCommand("Aurora", 22, 4, 60)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create ship: %w", err)
//	}
//	fmt.Printf("Created ship with ID: %s", cmd.ShipID())
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID        kernel.UUID
	name          string
	maxSpeed      float64
	maxContainers int
	maxWeight     float64

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a new ship.
// Automatically generates a unique ID for the ship.
func NewCreateShipCommand(
	name string,
	maxSpeed float64,
	maxContainers int,
	maxWeight float64,
) (CreateShipCommand, error) {
	command := CreateShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(kernel.NewUUID()),
		command.setName(name),
		command.setMaxSpeed(maxSpeed),
		command.setMaxContainers(maxContainers),
		command.setMaxWeight(maxWeight),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// ShipID returns the ID the new ship will get.
func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the ship name.
func (c CreateShipCommand) Name() string {
	return c.name
}

// MaxSpeed returns the ship speed in knots.
func (c CreateShipCommand) MaxSpeed() float64 {
	return c.maxSpeed
}

// MaxContainers returns the container count ceiling.
func (c CreateShipCommand) MaxContainers() int {
	return c.maxContainers
}

// MaxWeight returns the mass ceiling in tonnes.
func (c CreateShipCommand) MaxWeight() float64 {
	return c.maxWeight
}

func (c *CreateShipCommand) setShipID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipID = id
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return ErrShipNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setMaxSpeed(maxSpeed float64) error {
	if !(maxSpeed >= 0) {
		return ErrMaxSpeedIsInvalid
	}

	c.maxSpeed = maxSpeed
	return nil
}

func (c *CreateShipCommand) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return ErrMaxContainersIsInvalid
	}

	c.maxContainers = maxContainers
	return nil
}

func (c *CreateShipCommand) setMaxWeight(maxWeight float64) error {
	if !(maxWeight > 0) {
		return ErrMaxWeightIsInvalid
	}

	c.maxWeight = maxWeight
	return nil
}
