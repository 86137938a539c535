// Package errs provides standardized error types for the catalog application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - IdentifierIsInvalidError: For when an identifier cannot be built from its input
//   - NotFoundError: For when a repository holds no entity with the requested identifier
//   - EntityValidationError: For when an aggregate fails validation on one or more fields
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers at the edge of the system (HTTP handlers) classify errors with errors.As
// and errors.Is to choose a response status.
package errs
