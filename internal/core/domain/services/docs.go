// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the rental system. It
// implements business workflows that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - AvailabilityService: conflict detection for category capacity
//     and per-car availability over time windows
//
// Domain services coordinate between aggregates; they are stateless
// and operate on collections loaded by the calling use case.
package services
