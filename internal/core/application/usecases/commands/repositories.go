// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"rental/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarRepoFactory provides access to the car repository within a transaction.
	CarRepoFactory interface {
		CarRepository() ports.CarRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// RentalRepoFactory provides access to the rental repository within a transaction.
	RentalRepoFactory interface {
		RentalRepository() ports.RentalRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CarUoW manages transactions for car-only operations:
	// fleet registration, maintenance, and retirement.
	CarUoW interface {
		TxManager
		CarRepoFactory
	}

	// CarUoWFactory creates new car unit of work instances.
	CarUoWFactory interface {
		Create() CarUoW
	}

	// ReservationUoW manages transactions for reservation-only
	// operations: period changes, cancellation, and expiry.
	ReservationUoW interface {
		TxManager
		ReservationRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// BookingUoW manages transactions spanning reservations and
	// customers. Used when creating reservations, which must verify
	// the booking customer exists.
	BookingUoW interface {
		TxManager
		ReservationRepoFactory
		CustomerRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CapacityUoW manages transactions spanning reservations and the
	// fleet. Used when confirming reservations against category capacity.
	CapacityUoW interface {
		TxManager
		ReservationRepoFactory
		CarRepoFactory
	}

	// CapacityUoWFactory creates new capacity unit of work instances.
	CapacityUoWFactory interface {
		Create() CapacityUoW
	}

	// PickupUoW manages transactions spanning all three rental-flow
	// aggregates. Used at pick-up, which creates a rental, links it to
	// its reservation, and marks the selected car rented atomically.
	PickupUoW interface {
		TxManager
		ReservationRepoFactory
		CarRepoFactory
		RentalRepoFactory
	}

	// PickupUoWFactory creates new pick-up unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// ReturnUoW manages transactions spanning rentals and cars.
	// Used at return, which closes the rental and frees the car.
	ReturnUoW interface {
		TxManager
		RentalRepoFactory
		CarRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}
)
