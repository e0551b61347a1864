// Package errs provides standardized error types for the rental application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The kinds map onto the domain's failure taxonomy: missing or malformed
// input (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange), lookups
// (ObjectNotFound), uniqueness violations (ObjectAlreadyExists), illegal
// state-machine moves (InvalidStatusTransition), temporal-ordering
// violations (InvalidTimestamp), and capacity/overlap violations
// (Conflict). Infrastructure failures are not part of this taxonomy and
// surface untranslated.
package errs
