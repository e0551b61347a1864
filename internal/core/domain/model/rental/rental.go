package rental

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

const (
	minFuelLevel = 0
	maxFuelLevel = 100
)

// ErrRentalIsNotConstructed is returned when a Rental was not created
// through NewRental or RestoreRental.
var ErrRentalIsNotConstructed = errors.New(
	"Rental must be created via NewRental constructor")

// Rental records an actual hand-over of a concrete car against a
// confirmed reservation, including the fuel and odometer readings
// taken at pick-up and at return.
//
// Invariants:
//   - Fuel levels are percentages within [0, 100]
//   - Odometer readings are non-negative and never decrease
//   - The return timestamp never precedes the pick-up timestamp
type Rental struct {
	// id uniquely identifies the rental
	id kernel.UUID

	// reservationID references the reservation being fulfilled;
	// at most one rental may ever reference a given reservation
	reservationID kernel.UUID

	// customerID references the renting customer
	customerID kernel.UUID

	// carID references the concrete car handed over
	carID kernel.UUID

	// status is the current lifecycle state
	status Status

	// pickupAt is when the car was handed over
	pickupAt time.Time

	// returnAt is when the car came back, nil while Active
	returnAt *time.Time

	// fuelLevelOut is the fuel percentage at hand-over
	fuelLevelOut int

	// fuelLevelIn is the fuel percentage at return, nil while Active
	fuelLevelIn *int

	// kmOut is the odometer reading at hand-over
	kmOut int

	// kmIn is the odometer reading at return, nil while Active
	kmIn *int

	// guard ensures the rental was created via a constructor
	guard guard.ConstructorGuard
}

// NewRental creates an active rental from the pick-up readings.
func NewRental(
	id kernel.UUID,
	reservationID kernel.UUID,
	customerID kernel.UUID,
	carID kernel.UUID,
	pickupAt time.Time,
	fuelLevelOut int,
	kmOut int,
) (*Rental, error) {
	r := &Rental{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setReservationID(reservationID),
		r.setCustomerID(customerID),
		r.setCarID(carID),
		r.setPickupAt(pickupAt),
		r.setFuelLevelOut(fuelLevelOut),
		r.setKmOut(kmOut),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRental reconstructs a Rental aggregate from persistent
// storage, including the return readings when present.
func RestoreRental(
	id kernel.UUID,
	reservationID kernel.UUID,
	customerID kernel.UUID,
	carID kernel.UUID,
	status Status,
	pickupAt time.Time,
	returnAt *time.Time,
	fuelLevelOut int,
	fuelLevelIn *int,
	kmOut int,
	kmIn *int,
) (*Rental, error) {
	r := &Rental{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setReservationID(reservationID),
		r.setCustomerID(customerID),
		r.setCarID(carID),
		r.setStatus(status),
		r.setPickupAt(pickupAt),
		r.setFuelLevelOut(fuelLevelOut),
		r.setKmOut(kmOut),
	); err != nil {
		return nil, err
	}

	r.returnAt = returnAt
	r.fuelLevelIn = fuelLevelIn
	r.kmIn = kmIn
	return r, nil
}

// Validate ensures the Rental was created through a factory function.
func (r *Rental) Validate() error {
	if r == nil {
		return ErrRentalIsNotConstructed
	}
	return r.guard.Validate(ErrRentalIsNotConstructed)
}

// IsEqual compares two rentals by their unique identifiers.
func (r *Rental) IsEqual(other *Rental) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rental's unique identifier.
func (r *Rental) ID() kernel.UUID {
	return r.id
}

// ReservationID returns the fulfilled reservation's identifier.
func (r *Rental) ReservationID() kernel.UUID {
	return r.reservationID
}

// CustomerID returns the renting customer's identifier.
func (r *Rental) CustomerID() kernel.UUID {
	return r.customerID
}

// CarID returns the handed-over car's identifier.
func (r *Rental) CarID() kernel.UUID {
	return r.carID
}

// Status returns the current lifecycle state.
func (r *Rental) Status() Status {
	return r.status
}

// IsActive reports whether the car is still with the customer.
func (r *Rental) IsActive() bool {
	return r.status == Active
}

// PickupAt returns the hand-over timestamp.
func (r *Rental) PickupAt() time.Time {
	return r.pickupAt
}

// ReturnAt returns the return timestamp, nil while Active.
func (r *Rental) ReturnAt() *time.Time {
	return r.returnAt
}

// FuelLevelOut returns the fuel percentage at hand-over.
func (r *Rental) FuelLevelOut() int {
	return r.fuelLevelOut
}

// FuelLevelIn returns the fuel percentage at return, nil while Active.
func (r *Rental) FuelLevelIn() *int {
	return r.fuelLevelIn
}

// KmOut returns the odometer reading at hand-over.
func (r *Rental) KmOut() int {
	return r.kmOut
}

// KmIn returns the odometer reading at return, nil while Active.
func (r *Rental) KmIn() *int {
	return r.kmIn
}

// ReturnCar closes the rental with the return readings. All readings
// are validated before any state changes, so a rejected return leaves
// the rental untouched.
func (r *Rental) ReturnCar(returnAt time.Time, fuelLevelIn int, kmIn int) error {
	if returnAt.Before(r.pickupAt) {
		return errs.NewInvalidTimestampErrorWithCause("returnAt",
			fmt.Errorf("%s precedes pickupAt %s",
				returnAt.Format(time.RFC3339), r.pickupAt.Format(time.RFC3339)))
	}
	if fuelLevelIn < minFuelLevel || fuelLevelIn > maxFuelLevel {
		return errs.NewValueIsOutOfRangeError("fuelLevelIn", fuelLevelIn, minFuelLevel, maxFuelLevel)
	}
	if kmIn < r.kmOut {
		return errs.NewValueIsInvalidErrorWithCause("kmIn",
			fmt.Errorf("odometer cannot decrease: kmIn %d is below kmOut %d", kmIn, r.kmOut))
	}

	newStatus, err := r.status.Return()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.returnAt = &returnAt
	r.fuelLevelIn = &fuelLevelIn
	r.kmIn = &kmIn
	return nil
}

// NeedsRefuelFee reports whether the car came back with less fuel than
// it left with. Always false while the rental is Active.
func (r *Rental) NeedsRefuelFee() bool {
	return r.status == Returned && r.fuelLevelIn != nil && *r.fuelLevelIn < r.fuelLevelOut
}

// DistanceDriven returns the kilometers driven over the rental, zero
// while Active.
func (r *Rental) DistanceDriven() int {
	if r.kmIn == nil {
		return 0
	}
	return *r.kmIn - r.kmOut
}

func (r *Rental) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rental) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}
	r.reservationID = reservationID
	return nil
}

func (r *Rental) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Rental) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}
	r.carID = carID
	return nil
}

func (r *Rental) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Rental) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupAt")
	}
	r.pickupAt = pickupAt
	return nil
}

func (r *Rental) setFuelLevelOut(fuelLevelOut int) error {
	if fuelLevelOut < minFuelLevel || fuelLevelOut > maxFuelLevel {
		return errs.NewValueIsOutOfRangeError("fuelLevelOut", fuelLevelOut, minFuelLevel, maxFuelLevel)
	}
	r.fuelLevelOut = fuelLevelOut
	return nil
}

func (r *Rental) setKmOut(kmOut int) error {
	if kmOut < 0 {
		return errs.NewValueIsInvalidErrorWithCause("kmOut",
			fmt.Errorf("odometer reading %d cannot be negative", kmOut))
	}
	r.kmOut = kmOut
	return nil
}
