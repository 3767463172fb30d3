// Package vessel provides the ContainerShip aggregate root, which owns an
// ordered collection of cargo containers and guards the fleet-level ceilings.
//
// Key business rules:
//   - A ship never holds more containers than maxContainers
//   - The summed shell weight and load of all containers, in tonnes, never exceeds maxWeight
//   - Both ceilings are checked before anything changes, so a rejected admission leaves the ship intact
//   - The same serial number is never aboard twice
//
// Count violations are reported as *errs.CapacityExceededError and weight
// violations as *errs.OverfillError in tonnes.
package vessel
