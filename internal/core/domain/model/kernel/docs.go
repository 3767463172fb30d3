// Package kernel provides the shared value objects of the cargo domain.
//
// The package includes:
//   - UUID: identity of container ships in the fleet registry
//   - Kind: the closed set of container variants (liquid, gas, reefer)
//   - SerialNumber: the KON-<code>-<n> identity of a container
//   - SerialGenerator: the process-wide monotonic counter behind serial numbers
//
// All value objects reject their zero value in Validate, so an uninitialised
// identifier never reaches an aggregate.
package kernel
