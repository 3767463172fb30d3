// Package services provides domain services that coordinate operations spanning
// more than one aggregate.
//
// The package includes:
//   - CargoTransfer: moves a container between two ships without partial effects
package services
