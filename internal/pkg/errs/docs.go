// Package errs provides standardized error types for the cargo application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - OverfillError: For when a load would exceed a mass ceiling
//   - CapacityExceededError: For when an admission would exceed a count ceiling
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrOverfill)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Capacity errors are validation failures rather than transient faults: the
// operation that produced them changed nothing, and retrying it unchanged will
// fail again.
package errs
