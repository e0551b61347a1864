// Package car provides the Car aggregate and its operational-status
// state machine.
//
// The package includes:
//   - Car: the aggregate root holding identity, rental category, and
//     the vehicle's descriptive fields
//   - Status: the operational state machine
//     (Available/Rented/Maintenance/Retired)
//   - Category: the rental category enum used for capacity checks
//
// Key business rules:
//   - Cars are created Available via the NewCar factory, which
//     validates the license-plate format and descriptive fields
//   - Status changes only through the named transition operations
//   - Retired is terminal: no transition leaves it, and Retire itself
//     is idempotent
//   - Cars are never physically deleted; Retire removes them from the
//     operational fleet while keeping them for audit
package car
