// Package kernel provides core domain primitives shared by every
// aggregate of the rental system.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation
//     and comparison capabilities
//   - Period: a half-open time interval [Start, End) used for booking
//     windows, with overlap arithmetic
//
// These primitives enforce domain invariants at construction time and
// are immutable, making them safe for concurrent use.
package kernel
