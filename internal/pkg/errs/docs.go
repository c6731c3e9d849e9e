// Package errs provides standardized error types shared across the printshop
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// The package defines error types for the common validation scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its bounds
//   - ObjectNotFoundError: a lookup produced no result
//   - VersionIsInvalidError: an aggregate version check failed
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct carrying the offending parameter and optional cause
//   - constructors with and without cause
//   - Error() producing a single-line message
//   - Unwrap() returning the sentinel, enabling errors.Is classification
//
// Domain-specific errors (illegal transitions, delivery context failures,
// concurrent modification) live next to the types they describe but follow
// the same sentinel-plus-struct idiom.
package errs
