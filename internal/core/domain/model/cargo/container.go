package cargo

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const (
	// liquidCapacityRatio keeps 10% headroom in every liquid container.
	liquidCapacityRatio = 0.9
	// hazardousLiquidCapacityRatio halves the nominal capacity for hazardous liquids.
	hazardousLiquidCapacityRatio = 0.5
	// gasResidualRatio is the share of capacity a gas container keeps after unloading.
	gasResidualRatio = 0.05
)

var (
	// ErrContainerIsNotConstructed is returned when using a Container that was
	// not created through one of the kind constructors.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewLiquidContainer, NewGasContainer or NewReeferContainer")

	// ErrSerialGeneratorIsRequired is returned when a constructor gets no serial generator.
	ErrSerialGeneratorIsRequired = errs.NewValueIsRequiredError("serial generator")

	// ErrTemperatureCatalogIsRequired is returned when a reefer is built without a catalog.
	ErrTemperatureCatalogIsRequired = errs.NewValueIsRequiredError("temperature catalog")

	// ErrProductTypeIsRequired is returned when a container is built without a product.
	ErrProductTypeIsRequired = errs.NewValueIsRequiredError("productType")

	// ErrProductMismatch is returned when cargo of another product is loaded
	// into a container dedicated to a different one.
	ErrProductMismatch = errors.New("product does not match container product type")

	// ErrContainerIsOwned is returned when a container is claimed while
	// another ship carries it.
	ErrContainerIsOwned = errors.New("container is aboard another ship")
)

// Container is a cargo container of one of the kinds in kernel.Kind. The kind
// is fixed by the serial number and selects the load and unload rules; the
// kind-specific attributes below are only meaningful for their own kind.
//
// Key business rules:
//   - Identity (serial number) is assigned once, at construction
//   - Current load stays within [0, EffectiveCapacity()] at all times
//   - Load and Unload are the only operations that change the current load
//   - A rejected Load leaves the container untouched
//
// A Container is not safe for concurrent mutation of its load. Once admitted
// to a ship its load changes only through that ship, under the ship's lock.
// The owner mark is synchronized on its own, so two ships can never carry the
// same container.
//
// Example usage:
//
//	serials := kernel.NewSerialGenerator()
//	dims, _ := cargo.NewDimensions(10000, 2000, 250, 600)
//	milk, err := cargo.NewLiquidContainer(serials, dims, "Milk", false, logger)
//	if err != nil {
//	    return err
//	}
//	if err := milk.Load(8500); err != nil {
//	    // errors.Is(err, errs.ErrOverfill)
//	}
type Container struct {
	// serial identifies the container and encodes its kind
	serial kernel.SerialNumber

	// dimensions holds the immutable physical description
	dimensions Dimensions

	// productType describes the carried product
	productType string

	// currentLoad is the cargo mass in kilograms
	currentLoad float64

	// hazardous applies to liquid containers and halves their capacity
	hazardous bool

	// pressure applies to gas containers, in atmospheres
	pressure float64

	// requiredTemperature applies to reefers, in degrees Celsius
	requiredTemperature float64

	// alerts receives hazard notifications
	alerts *slog.Logger

	// owner is the ID of the carrying ship; the zero UUID means ashore
	owner   kernel.UUID
	ownerMu sync.Mutex

	// guard ensures the container was properly initialized
	guard guard.ConstructorGuard
}

var _ HazardNotifier = (*Container)(nil)

// NewLiquidContainer creates a liquid container.
//
// Parameters:
//   - serials: Generator issuing the KON-L-<n> serial
//   - dimensions: Shell dimensions (must be constructed)
//   - productType: Carried product (must be non-empty)
//   - hazardous: Whether the cargo is hazardous; fixed for the container's lifetime
//   - alerts: Logger receiving hazard alerts (slog.Default when nil)
//
// Returns:
//   - *Container: Empty liquid container
//   - error: Aggregated validation errors, if any
func NewLiquidContainer(
	serials *kernel.SerialGenerator,
	dimensions Dimensions,
	productType string,
	hazardous bool,
	alerts *slog.Logger,
) (*Container, error) {
	c, err := newContainer(serials, kernel.Liquid, dimensions, productType, alerts)
	if err != nil {
		return nil, err
	}
	c.hazardous = hazardous
	return c, nil
}

// NewGasContainer creates a gas container. Pressure is descriptive and must
// not be negative.
func NewGasContainer(
	serials *kernel.SerialGenerator,
	dimensions Dimensions,
	productType string,
	pressure float64,
	alerts *slog.Logger,
) (*Container, error) {
	var pressureErr error
	if !(pressure >= 0) {
		pressureErr = errs.NewValueIsInvalidErrorWithCause(
			"pressure is invalid",
			fmt.Errorf("%s is negative", errs.FormatQuantity(pressure)),
		)
	}

	c, err := newContainer(serials, kernel.Gas, dimensions, productType, alerts, pressureErr)
	if err != nil {
		return nil, err
	}
	c.pressure = pressure
	return c, nil
}

// NewReeferContainer creates a refrigerated container. The required
// temperature is resolved once from catalog and never changes afterwards;
// unknown products fall back to DefaultTemperature with a logged warning.
//
// Example:
//
//	catalog := cargo.NewTemperatureCatalog(logger)
//	meat, err := cargo.NewReeferContainer(serials, dims, "Meat", catalog, logger)
//	// meat.RequiredTemperature() == -15
func NewReeferContainer(
	serials *kernel.SerialGenerator,
	dimensions Dimensions,
	productType string,
	catalog *TemperatureCatalog,
	alerts *slog.Logger,
) (*Container, error) {
	var catalogErr error
	if catalog == nil {
		catalogErr = ErrTemperatureCatalogIsRequired
	}

	c, err := newContainer(serials, kernel.Reefer, dimensions, productType, alerts, catalogErr)
	if err != nil {
		return nil, err
	}
	c.requiredTemperature = catalog.RequiredTemperature(productType)
	return c, nil
}

// newContainer validates the shared attributes and only then draws a serial,
// so failed constructions do not consume sequence numbers.
func newContainer(
	serials *kernel.SerialGenerator,
	kind kernel.Kind,
	dimensions Dimensions,
	productType string,
	alerts *slog.Logger,
	extra ...error,
) (*Container, error) {
	c := &Container{
		alerts: alertLogger(alerts),
		guard:  guard.NewConstructorGuard(),
	}

	var serialsErr error
	if serials == nil {
		serialsErr = ErrSerialGeneratorIsRequired
	}

	if err := errors.Join(
		append([]error{
			serialsErr,
			c.setDimensions(dimensions),
			c.setProductType(productType),
		}, extra...)...,
	); err != nil {
		return nil, err
	}

	serial, err := serials.Next(kind)
	if err != nil {
		return nil, err
	}
	c.serial = serial
	return c, nil
}

// Validate checks that the container was created through a kind constructor.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// SerialNumber returns the container identity.
func (c *Container) SerialNumber() kernel.SerialNumber {
	return c.serial
}

// Kind returns the container kind.
func (c *Container) Kind() kernel.Kind {
	return c.serial.Kind()
}

// Dimensions returns the shell dimensions.
func (c *Container) Dimensions() Dimensions {
	return c.dimensions
}

// MaxCapacity returns the nominal capacity in kilograms.
func (c *Container) MaxCapacity() float64 {
	return c.dimensions.MaxCapacity()
}

// Weight returns the shell mass in kilograms.
func (c *Container) Weight() float64 {
	return c.dimensions.Weight()
}

// CurrentLoad returns the cargo mass in kilograms.
func (c *Container) CurrentLoad() float64 {
	return c.currentLoad
}

// Mass returns shell weight plus current load, the figure ships sum up.
func (c *Container) Mass() float64 {
	return c.dimensions.Weight() + c.currentLoad
}

// ProductType returns the carried product.
func (c *Container) ProductType() string {
	return c.productType
}

// IsHazardous reports the hazardous flag. Always false for non-liquid kinds.
func (c *Container) IsHazardous() bool {
	return c.hazardous
}

// Pressure returns the gas pressure in atmospheres. Zero for non-gas kinds.
func (c *Container) Pressure() float64 {
	return c.pressure
}

// RequiredTemperature returns the reefer temperature in degrees Celsius.
// Zero for non-reefer kinds.
func (c *Container) RequiredTemperature() float64 {
	return c.requiredTemperature
}

// EffectiveCapacity returns the largest load this container may hold.
//
// Rules per kind:
//   - Liquid: 90% of max capacity, or 50% when hazardous
//   - Gas, Reefer: the full max capacity
func (c *Container) EffectiveCapacity() float64 {
	maxCapacity := c.dimensions.MaxCapacity()

	switch c.Kind() {
	case kernel.Liquid:
		if c.hazardous {
			return maxCapacity * hazardousLiquidCapacityRatio
		}
		return maxCapacity * liquidCapacityRatio
	case kernel.Gas, kernel.Reefer, kernel.UnknownKind:
		return maxCapacity
	}
	return maxCapacity
}

// ResidualLoad returns the load left behind by Unload: 5% of max capacity
// for gas, nothing for the other kinds.
func (c *Container) ResidualLoad() float64 {
	if c.Kind() == kernel.Gas {
		return c.dimensions.MaxCapacity() * gasResidualRatio
	}
	return 0
}

// Owner returns the ID of the ship carrying the container and whether any
// ship carries it.
func (c *Container) Owner() (kernel.UUID, bool) {
	c.ownerMu.Lock()
	defer c.ownerMu.Unlock()
	return c.owner, c.owner.Validate() == nil
}

// Claim marks the container as carried by owner. Claiming again for the same
// owner is a no-op; a container carried by another ship is refused with
// ErrContainerIsOwned.
func (c *Container) Claim(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	c.ownerMu.Lock()
	defer c.ownerMu.Unlock()

	if c.owner.Validate() == nil && !c.owner.IsEqual(owner) {
		return fmt.Errorf("%w: %s is carried by %s", ErrContainerIsOwned, c.serial, c.owner)
	}
	c.owner = owner
	return nil
}

// Release clears the owner mark when it names owner.
func (c *Container) Release(owner kernel.UUID) {
	c.ownerMu.Lock()
	defer c.ownerMu.Unlock()

	if c.owner.IsEqual(owner) {
		c.owner = kernel.UUID{}
	}
}

// HandOver moves the owner mark from one ship to another in a single step.
// It fails with ErrContainerIsOwned unless from currently carries the container.
func (c *Container) HandOver(from, to kernel.UUID) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.ownerMu.Lock()
	defer c.ownerMu.Unlock()

	if !c.owner.IsEqual(from) {
		return fmt.Errorf("%w: %s is not carried by %s", ErrContainerIsOwned, c.serial, from)
	}
	c.owner = to
	return nil
}

// Load adds mass kilograms of cargo.
//
// Parameters:
//   - mass: Cargo mass in kilograms (must be >= 0)
//
// Returns:
//   - error: *errs.ValueIsInvalidError for a negative mass,
//     *errs.OverfillError when mass + current load exceeds EffectiveCapacity()
//
// A rejected load leaves the current load unchanged. Overfilling a hazardous
// liquid or any gas container additionally raises a hazard alert.
//
// Example:
//
//	err := container.Load(1200)
//	var overfill *errs.OverfillError
//	if errors.As(err, &overfill) {
//	    fmt.Printf("only %.0fkg left\n", overfill.Limit-overfill.Current)
//	}
func (c *Container) Load(mass float64) error {
	if !(mass >= 0) || math.IsInf(mass, 1) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mass is invalid",
			fmt.Errorf("%s is not a non-negative finite mass", errs.FormatQuantity(mass)),
		)
	}

	limit := c.EffectiveCapacity()
	if mass+c.currentLoad > limit {
		err := errs.NewOverfillError(c.serial.String(), mass, c.currentLoad, limit, errs.UnitKilogram)
		if c.raisesOverfillAlerts() {
			c.NotifyHazard(err.Error())
		}
		return err
	}

	c.currentLoad += mass
	return nil
}

// LoadProduct loads mass kilograms of product, refusing cargo that differs
// from the container's product type.
func (c *Container) LoadProduct(product string, mass float64) error {
	if product != c.productType {
		return fmt.Errorf("%w: %s holds %q, got %q", ErrProductMismatch, c.serial, c.productType, product)
	}
	return c.Load(mass)
}

// Unload empties the container down to its residual load. Calling it again
// leaves the same result.
func (c *Container) Unload() {
	c.currentLoad = c.ResidualLoad()
}

// NotifyHazard emits a hazard alert tagged with the container serial and
// returns the alert line, formatted as "HAZARD ALERT [<serial>]: <message>".
func (c *Container) NotifyHazard(message string) string {
	line := FormatHazardAlert(c.serial.String(), message)
	c.alerts.Warn(line, "serial", c.serial.String(), "kind", c.Kind().String())
	return line
}

// Describe returns a one-line summary of the container.
//
// Example output:
//
//	Serial: KON-R-3, Load: 1200/5000kg, Weight: 900kg, Product: Meat, Temperature: -15°C
func (c *Container) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Serial: %s, Load: %s/%skg, Weight: %skg, Product: %s",
		c.serial,
		errs.FormatQuantity(c.currentLoad),
		errs.FormatQuantity(c.dimensions.MaxCapacity()),
		errs.FormatQuantity(c.dimensions.Weight()),
		c.productType,
	)

	switch c.Kind() {
	case kernel.Liquid:
		fmt.Fprintf(&b, ", Hazardous: %t", c.hazardous)
	case kernel.Gas:
		fmt.Fprintf(&b, ", Pressure: %satm", errs.FormatQuantity(c.pressure))
	case kernel.Reefer:
		fmt.Fprintf(&b, ", Temperature: %s°C", errs.FormatQuantity(c.requiredTemperature))
	case kernel.UnknownKind:
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c *Container) String() string {
	return c.Describe()
}

func (c *Container) raisesOverfillAlerts() bool {
	return c.Kind() == kernel.Gas || (c.Kind() == kernel.Liquid && c.hazardous)
}

func (c *Container) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *Container) setProductType(productType string) error {
	if strings.TrimSpace(productType) == "" {
		return ErrProductTypeIsRequired
	}

	c.productType = productType
	return nil
}
