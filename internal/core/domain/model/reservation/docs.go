// Package reservation provides the Reservation aggregate and its
// booking-intent state machine.
//
// A reservation books a car category for a time window; no concrete
// car is bound until pick-up. The lifecycle is:
//
//	Draft ──┬──> Confirmed ──> (pick-up creates a Rental)
//	        ├──> Cancelled        │
//	        └──> Expired          └──> Cancelled
//
// Cancelled and Expired are terminal. Reservations are never deleted;
// terminal ones are kept for audit.
//
// Key business rules:
//   - Only Draft reservations can change their period, be confirmed,
//     or expire; cancellation is allowed from Draft and Confirmed
//   - Every lifecycle timestamp set by a transition must not precede
//     the creation timestamp
//   - The rental link is assigned at most once; repeating the same
//     assignment is a no-op
//   - Capacity checking happens in the availability service before
//     Confirm is invoked; the aggregate itself enforces no capacity
package reservation
