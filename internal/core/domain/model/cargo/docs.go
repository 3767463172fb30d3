// Package cargo provides the container entity of the cargo domain.
//
// The package includes:
//   - Container: a cargo container of kind liquid, gas or reefer
//   - Dimensions: the immutable shell description (capacity, weight, size)
//   - TemperatureCatalog: the product to reefer temperature table
//   - HazardNotifier: the hazard alert capability shared by all kinds
//   - Factory: constructors bound to a serial generator, catalog and alert logger
//
// Key business rules:
//   - A container's load never exceeds its effective capacity
//   - Liquid containers keep 10% headroom; hazardous liquids may only be half full
//   - Gas containers keep 5% of their capacity after unloading
//   - Reefer temperature is fixed at construction from the product type
//   - Serial numbers are issued once and never reused
package cargo
