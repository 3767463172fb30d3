package commands

import "errors"

var (
	ErrShipNameIsRequired  = errors.New("ship name is required")
	ErrContainerIsRequired = errors.New("container is required")
	ErrSerialIsRequired    = errors.New("container serial is required")
)
