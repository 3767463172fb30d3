package cargo

import (
	"log/slog"

	"cargo/internal/core/domain/model/kernel"
)

// Factory builds containers with shared collaborators: the process serial
// generator, the temperature catalog used by reefers and the hazard alert
// logger.
type Factory struct {
	serials *kernel.SerialGenerator
	catalog *TemperatureCatalog
	alerts  *slog.Logger
}

// NewFactory creates a container factory.
func NewFactory(serials *kernel.SerialGenerator, catalog *TemperatureCatalog, alerts *slog.Logger) *Factory {
	return &Factory{
		serials: serials,
		catalog: catalog,
		alerts:  alerts,
	}
}

// NewLiquid creates a liquid container.
func (f *Factory) NewLiquid(dimensions Dimensions, productType string, hazardous bool) (*Container, error) {
	return NewLiquidContainer(f.serials, dimensions, productType, hazardous, f.alerts)
}

// NewGas creates a gas container.
func (f *Factory) NewGas(dimensions Dimensions, productType string, pressure float64) (*Container, error) {
	return NewGasContainer(f.serials, dimensions, productType, pressure, f.alerts)
}

// NewReefer creates a refrigerated container using the factory's catalog.
func (f *Factory) NewReefer(dimensions Dimensions, productType string) (*Container, error) {
	return NewReeferContainer(f.serials, dimensions, productType, f.catalog, f.alerts)
}

// Catalog returns the temperature catalog used for reefers.
func (f *Factory) Catalog() *TemperatureCatalog {
	return f.catalog
}
