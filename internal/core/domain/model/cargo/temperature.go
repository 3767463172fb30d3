package cargo

import (
	"log/slog"
	"sort"
)

// DefaultTemperature is used for products missing from the catalog.
const DefaultTemperature = 0.0

// ProductTemperature is one catalog entry.
type ProductTemperature struct {
	Product     string
	Temperature float64
}

// TemperatureCatalog maps refrigerated products to the temperature, in degrees
// Celsius, a reefer must hold them at. The table is fixed at construction and
// never mutated, so a catalog may be shared freely.
type TemperatureCatalog struct {
	temperatures map[string]float64
	logger       *slog.Logger
}

// NewTemperatureCatalog returns the standard product table. Lookups of
// unknown products are reported on logger.
func NewTemperatureCatalog(logger *slog.Logger) *TemperatureCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemperatureCatalog{
		temperatures: map[string]float64{
			"Bananas":      13.3,
			"Chocolate":    18,
			"Fish":         2,
			"Meat":         -15,
			"Ice cream":    -18,
			"Frozen pizza": -30,
			"Cheese":       7.2,
			"Sausages":     5,
			"Butter":       20.5,
			"Eggs":         19,
		},
		logger: logger.With("component", "temperature_catalog"),
	}
}

// Lookup returns the temperature for product and whether the product is known.
// Product names are matched exactly.
func (c *TemperatureCatalog) Lookup(product string) (float64, bool) {
	temperature, ok := c.temperatures[product]
	return temperature, ok
}

// RequiredTemperature returns the temperature for product. Unknown products
// resolve to DefaultTemperature and a warning is logged; this never fails.
func (c *TemperatureCatalog) RequiredTemperature(product string) float64 {
	if temperature, ok := c.Lookup(product); ok {
		return temperature
	}
	c.logger.Warn("unknown product, using default temperature",
		"product", product,
		"temperature", DefaultTemperature,
	)
	return DefaultTemperature
}

// Products lists the catalog sorted by product name.
func (c *TemperatureCatalog) Products() []ProductTemperature {
	out := make([]ProductTemperature, 0, len(c.temperatures))
	for product, temperature := range c.temperatures {
		out = append(out, ProductTemperature{Product: product, Temperature: temperature})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Product < out[j].Product
	})
	return out
}
