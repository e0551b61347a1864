// Package rental provides the Rental aggregate recording an actual
// car hand-over and its eventual return.
//
// A rental is created at pick-up time from a confirmed reservation and
// binds a concrete car. The lifecycle is:
//
//	Active ──> Returned
//
// Returned is terminal. The aggregate captures fuel level and odometer
// readings at both ends of the rental so billing surcharges (refuel
// fee) can be derived from state alone.
package rental
