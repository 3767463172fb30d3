package vessel

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const kilogramsPerTonne = 1000.0

// Domain errors for ship operations.
var (
	// ErrNameIsRequired is returned when creating a ship without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrShipIsNotConstructed is returned when using an improperly initialized ContainerShip.
	ErrShipIsNotConstructed = errors.New("ContainerShip must be created via NewContainerShip constructor")
	// ErrContainerAlreadyAboard is returned when admitting a container the ship already carries.
	ErrContainerAlreadyAboard = errors.New("container already aboard")
	// ErrSameShip is returned when a transfer names the same ship as source and destination.
	ErrSameShip = errors.New("source and destination ship are the same")
)

// ContainerShip is the aggregate root that owns a collection of containers and
// enforces the fleet-level ceilings on every admission.
//
// Key responsibilities:
//   - Admitting containers subject to the count and weight ceilings
//   - Removing containers by serial number
//   - Reporting aggregate mass and a summary line
//
// Business rules:
//   - Ship must have a valid UUID, a non-empty name, a non-negative speed and positive ceilings
//   - len(containers) <= maxContainers after every successful mutation
//   - Σ(shell weight + current load) / 1000 <= maxWeight after every successful mutation
//   - All checks run before the collection changes; there is no partial admission
//   - Containers keep insertion order; nothing re-sorts them
//   - A container is carried by at most one ship; admission claims it and removal releases it
//
// The aggregate mass is recomputed from the containers on every check rather
// than kept as a running total, so it stays correct if a container's load
// changes while aboard.
//
// All methods are safe for concurrent use: each ship serializes its own
// mutations, so two concurrent admissions cannot jointly break a ceiling.
//
// Example usage:
//
//	ship, err := vessel.NewContainerShip(kernel.NewUUID(), "Aurora", 22, 2, 50)
//	if err != nil {
//	    return err
//	}
//	if err := ship.LoadContainer(container); err != nil {
//	    // errors.Is(err, errs.ErrCapacityExceeded) or errors.Is(err, errs.ErrOverfill)
//	}
type ContainerShip struct {
	// id uniquely identifies the ship in the fleet registry
	id kernel.UUID
	// name is the human-readable ship name
	name string
	// maxSpeed is the service speed in knots, descriptive only
	maxSpeed float64
	// maxContainers is the container count ceiling
	maxContainers int
	// maxWeight is the total mass ceiling in tonnes
	maxWeight float64
	// containers are owned by the ship, in admission order
	containers []*cargo.Container
	// mu serializes checks and mutations of containers
	mu sync.RWMutex
	// guard ensures the ship was properly constructed
	guard guard.ConstructorGuard
}

// NewContainerShip creates an empty ship.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Ship name (must be non-empty)
//   - maxSpeed: Speed in knots (must be >= 0)
//   - maxContainers: Count ceiling (must be > 0)
//   - maxWeight: Mass ceiling in tonnes (must be > 0)
//
// Returns:
//   - *ContainerShip: Ship with no containers aboard
//   - error: Aggregated validation errors, if any
func NewContainerShip(
	id kernel.UUID,
	name string,
	maxSpeed float64,
	maxContainers int,
	maxWeight float64,
) (*ContainerShip, error) {
	ship := &ContainerShip{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ship.setID(id),
		ship.setName(name),
		ship.setMaxSpeed(maxSpeed),
		ship.setMaxContainers(maxContainers),
		ship.setMaxWeight(maxWeight),
	); err != nil {
		return nil, err
	}

	return ship, nil
}

// IsEqual compares ships by identity.
func (s *ContainerShip) IsEqual(other *ContainerShip) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks that the ship was created via NewContainerShip.
func (s *ContainerShip) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// ID returns the ship identifier.
func (s *ContainerShip) ID() kernel.UUID {
	return s.id
}

// Name returns the ship name.
func (s *ContainerShip) Name() string {
	return s.name
}

// MaxSpeed returns the speed in knots.
func (s *ContainerShip) MaxSpeed() float64 {
	return s.maxSpeed
}

// MaxContainers returns the container count ceiling.
func (s *ContainerShip) MaxContainers() int {
	return s.maxContainers
}

// MaxWeight returns the mass ceiling in tonnes.
func (s *ContainerShip) MaxWeight() float64 {
	return s.maxWeight
}

// Containers returns the containers aboard in admission order.
// The returned slice is a copy; the containers themselves are shared.
func (s *ContainerShip) Containers() []*cargo.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*cargo.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// ContainerCount returns how many containers are aboard.
func (s *ContainerShip) ContainerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.containers)
}

// Container returns the container with serial, or nil when it is not aboard.
func (s *ContainerShip) Container(serial kernel.SerialNumber) *cargo.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(serial); i >= 0 {
		return s.containers[i]
	}
	return nil
}

// TotalMass returns the summed shell weight and load of all containers, in kilograms.
func (s *ContainerShip) TotalMass() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalMass()
}

// LoadContainer admits a single container.
//
// Parameters:
//   - container: The container to admit (must be valid and not already aboard)
//
// Returns:
//   - error: *errs.CapacityExceededError when the count ceiling would be passed,
//     *errs.OverfillError when the weight ceiling would be passed,
//     ErrContainerAlreadyAboard for a duplicate serial,
//     cargo.ErrContainerIsOwned when another ship carries the container
//
// The count ceiling is checked first, so a full ship reports
// CapacityExceeded even when the container would also be too heavy.
//
// Example:
//
//	err := ship.LoadContainer(reefer)
//	switch {
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    // no free slot
//	case errors.Is(err, errs.ErrOverfill):
//	    // too heavy
//	}
func (s *ContainerShip) LoadContainer(container *cargo.Container) error {
	return s.LoadContainers(container)
}

// LoadContainers admits a batch of containers atomically: either all of them
// are appended in the given order, or none is.
func (s *ContainerShip) LoadContainers(containers ...*cargo.Container) error {
	if err := s.validateCandidates(containers); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range containers {
		if s.indexOf(c.SerialNumber()) >= 0 {
			return fmt.Errorf("%w: %s on %s", ErrContainerAlreadyAboard, c.SerialNumber(), s.name)
		}
	}

	if err := s.checkOwners(containers...); err != nil {
		return err
	}

	if err := s.checkAdmission(len(s.containers), s.totalMass(), containers); err != nil {
		return err
	}

	if err := s.claim(containers...); err != nil {
		return err
	}

	s.containers = append(s.containers, containers...)
	return nil
}

// UnloadContainer removes every container whose serial matches and returns
// the removed containers. No match is not an error: the ship is left as is and
// an empty slice is returned. Removed containers keep their load and are
// released, so another ship may admit them.
func (s *ContainerShip) UnloadContainer(serial kernel.SerialNumber) []*cargo.Container {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make([]*cargo.Container, 0, 1)
	kept := s.containers[:0]
	for _, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			c.Release(s.id)
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	clear(s.containers[len(kept):])
	s.containers = kept

	return removed
}

// ReplaceContainer swaps the container with serial for replacement, keeping
// its position. The ceilings are evaluated as if the old container had
// already left; on failure the ship is unchanged.
//
// Returns:
//   - *cargo.Container: The container that was taken off
//   - error: *errs.ObjectNotFoundError when serial is not aboard, or any admission error
func (s *ContainerShip) ReplaceContainer(
	serial kernel.SerialNumber,
	replacement *cargo.Container,
) (*cargo.Container, error) {
	if err := s.validateCandidates([]*cargo.Container{replacement}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(serial)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("serial", serial.String())
	}

	if !replacement.SerialNumber().IsEqual(serial) && s.indexOf(replacement.SerialNumber()) >= 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrContainerAlreadyAboard, replacement.SerialNumber(), s.name)
	}

	if err := s.checkOwners(replacement); err != nil {
		return nil, err
	}

	old := s.containers[i]
	remainingMass := s.totalMass() - old.Mass()
	if err := s.checkAdmission(len(s.containers)-1, remainingMass, []*cargo.Container{replacement}); err != nil {
		return nil, err
	}

	if err := s.claim(replacement); err != nil {
		return nil, err
	}
	if old != replacement {
		old.Release(s.id)
	}

	s.containers[i] = replacement
	return old, nil
}

// EmptyContainer unloads the container with serial down to its residual
// load. A gas container below its residual gains mass, so the weight ceiling
// is checked against the difference first; on failure the container is
// untouched.
//
// Returns:
//   - *cargo.Container: The emptied container
//   - error: *errs.ObjectNotFoundError when serial is not aboard,
//     *errs.OverfillError when the residual would break the weight ceiling
func (s *ContainerShip) EmptyContainer(serial kernel.SerialNumber) (*cargo.Container, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(serial)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("serial", serial.String())
	}
	c := s.containers[i]

	if delta := c.ResidualLoad() - c.CurrentLoad(); delta > 0 {
		current := s.totalMass()
		if (current+delta)/kilogramsPerTonne > s.maxWeight {
			return nil, errs.NewOverfillError(
				s.name,
				delta/kilogramsPerTonne,
				current/kilogramsPerTonne,
				s.maxWeight,
				errs.UnitTonne,
			)
		}
	}

	c.Unload()
	return c, nil
}

// TransferContainer moves the container with serial from s to another ship.
// Both ships are locked for the whole move, so the destination's ceilings
// and the owner hand-over are decided together. On failure neither ship
// changes.
//
// Returns:
//   - *cargo.Container: The moved container
//   - error: ErrSameShip, *errs.ObjectNotFoundError when serial is not aboard s,
//     ErrContainerAlreadyAboard when to already carries the serial,
//     or an admission error from the destination
func (s *ContainerShip) TransferContainer(to *ContainerShip, serial kernel.SerialNumber) (*cargo.Container, error) {
	if err := errors.Join(s.Validate(), to.Validate()); err != nil {
		return nil, err
	}
	if s == to || s.IsEqual(to) {
		return nil, ErrSameShip
	}

	unlock := lockPair(s, to)
	defer unlock()

	i := s.indexOf(serial)
	if i < 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"serial", serial.String(), errors.New("container is not aboard "+s.name),
		)
	}
	c := s.containers[i]

	if to.indexOf(serial) >= 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrContainerAlreadyAboard, serial, to.name)
	}

	if err := to.checkAdmission(len(to.containers), to.totalMass(), []*cargo.Container{c}); err != nil {
		return nil, err
	}

	if err := c.HandOver(s.id, to.id); err != nil {
		return nil, err
	}

	s.containers = slices.Delete(s.containers, i, i+1)
	to.containers = append(to.containers, c)
	return c, nil
}

// Describe returns a one-line summary of the ship.
//
// Example output:
//
//	Ship: Aurora, Speed: 22kn, Containers: 2/4, Weight: 40.5/60t
func (s *ContainerShip) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf("Ship: %s, Speed: %skn, Containers: %d/%d, Weight: %s/%st",
		s.name,
		errs.FormatQuantity(s.maxSpeed),
		len(s.containers),
		s.maxContainers,
		errs.FormatQuantity(s.totalMass()/kilogramsPerTonne),
		errs.FormatQuantity(s.maxWeight),
	)
}

// String implements fmt.Stringer.
func (s *ContainerShip) String() string {
	return s.Describe()
}

// checkAdmission evaluates both ceilings for adding candidates to a ship that
// currently holds count containers of currentMass kilograms.
func (s *ContainerShip) checkAdmission(count int, currentMass float64, candidates []*cargo.Container) error {
	if requested := count + len(candidates); requested > s.maxContainers {
		return errs.NewCapacityExceededError(s.name, requested, s.maxContainers)
	}

	var incomingMass float64
	for _, c := range candidates {
		incomingMass += c.Mass()
	}

	if (currentMass+incomingMass)/kilogramsPerTonne > s.maxWeight {
		return errs.NewOverfillError(
			s.name,
			incomingMass/kilogramsPerTonne,
			currentMass/kilogramsPerTonne,
			s.maxWeight,
			errs.UnitTonne,
		)
	}

	return nil
}

// checkOwners refuses containers another ship carries.
func (s *ContainerShip) checkOwners(containers ...*cargo.Container) error {
	for _, c := range containers {
		if owner, owned := c.Owner(); owned && !owner.IsEqual(s.id) {
			return fmt.Errorf("%w: %s is carried by %s", cargo.ErrContainerIsOwned, c.SerialNumber(), owner)
		}
	}
	return nil
}

// claim marks every container as carried by s. When one claim fails the
// claims already made are released.
func (s *ContainerShip) claim(containers ...*cargo.Container) error {
	for i, c := range containers {
		if err := c.Claim(s.id); err != nil {
			for _, claimed := range containers[:i] {
				claimed.Release(s.id)
			}
			return err
		}
	}
	return nil
}

// lockPair write-locks both ships in a stable order so that concurrent
// transfers in opposite directions cannot deadlock.
func lockPair(a, b *ContainerShip) func() {
	first, second := a, b
	if b.id.String() < a.id.String() {
		first, second = b, a
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

func (s *ContainerShip) validateCandidates(containers []*cargo.Container) error {
	if err := s.Validate(); err != nil {
		return err
	}

	seen := make(map[kernel.SerialNumber]struct{}, len(containers))
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.SerialNumber()]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrContainerAlreadyAboard, c.SerialNumber())
		}
		seen[c.SerialNumber()] = struct{}{}
	}
	return nil
}

func (s *ContainerShip) indexOf(serial kernel.SerialNumber) int {
	for i, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			return i
		}
	}
	return -1
}

func (s *ContainerShip) totalMass() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.Mass()
	}
	return total
}

func (s *ContainerShip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *ContainerShip) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

func (s *ContainerShip) setMaxSpeed(maxSpeed float64) error {
	if !(maxSpeed >= 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSpeed is invalid",
			fmt.Errorf("%s is negative", errs.FormatQuantity(maxSpeed)),
		)
	}

	s.maxSpeed = maxSpeed
	return nil
}

func (s *ContainerShip) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxContainers is invalid",
			fmt.Errorf("%d is not greater than 0", maxContainers),
		)
	}

	s.maxContainers = maxContainers
	return nil
}

func (s *ContainerShip) setMaxWeight(maxWeight float64) error {
	if !(maxWeight > 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight is invalid",
			fmt.Errorf("%s is not greater than 0", errs.FormatQuantity(maxWeight)),
		)
	}

	s.maxWeight = maxWeight
	return nil
}
