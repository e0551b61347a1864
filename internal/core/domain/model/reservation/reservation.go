package reservation

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrReservationIsNotConstructed is returned when a Reservation was not
// created through NewReservation or RestoreReservation.
var ErrReservationIsNotConstructed = errors.New(
	"Reservation must be created via NewReservation constructor")

// Reservation represents a customer's booking intent: a car category
// reserved for a time window. It is the aggregate root managing the
// booking lifecycle from draft through confirmation to fulfillment,
// cancellation, or expiry.
//
// Invariants:
//   - Valid identifiers, category, and period
//   - Status transitions are monotonic per the state machine
//   - Every lifecycle timestamp set by a transition is >= CreatedAt
//   - The rental link is assigned at most once
type Reservation struct {
	// id uniquely identifies the reservation
	id kernel.UUID

	// customerID references the booking customer
	customerID kernel.UUID

	// category is the booked car category; a concrete car is bound
	// only at pick-up
	category car.Category

	// period is the half-open booking window
	period kernel.Period

	// status is the current lifecycle state
	status Status

	// createdAt anchors the temporal-ordering invariant
	createdAt time.Time

	// lifecycle timestamps, set by the corresponding transitions
	confirmedAt *time.Time
	cancelledAt *time.Time
	expiredAt   *time.Time

	// rentalID links the rental created at pick-up (nil until then)
	rentalID *kernel.UUID

	// guard ensures the reservation was created via a constructor
	guard guard.ConstructorGuard
}

// NewReservation creates a draft reservation for a category and window.
//
// The future-only booking policy (period must start after "now") is a
// caller concern enforced by the use-case layer, not an aggregate
// invariant: restoring historical reservations must stay possible.
func NewReservation(
	id kernel.UUID,
	customerID kernel.UUID,
	category car.Category,
	period kernel.Period,
	createdAt time.Time,
) (*Reservation, error) {
	r := &Reservation{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setCategory(category),
		r.setPeriod(period),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReservation reconstructs a Reservation aggregate from
// persistent storage, including its lifecycle timestamps and rental
// link. The restored reservation behaves identically to one that
// reached the same state through domain operations.
func RestoreReservation(
	id kernel.UUID,
	customerID kernel.UUID,
	category car.Category,
	period kernel.Period,
	status Status,
	createdAt time.Time,
	confirmedAt *time.Time,
	cancelledAt *time.Time,
	expiredAt *time.Time,
	rentalID *kernel.UUID,
) (*Reservation, error) {
	r := &Reservation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setCategory(category),
		r.setPeriod(period),
		r.setStatus(status),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if rentalID != nil {
		if err := rentalID.Validate(); err != nil {
			return nil, err
		}
	}

	r.confirmedAt = confirmedAt
	r.cancelledAt = cancelledAt
	r.expiredAt = expiredAt
	r.rentalID = rentalID
	return r, nil
}

// Validate ensures the Reservation was created through a factory
// function.
func (r *Reservation) Validate() error {
	if r == nil {
		return ErrReservationIsNotConstructed
	}
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

// IsEqual compares two reservations by their unique identifiers.
func (r *Reservation) IsEqual(other *Reservation) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the booking customer's identifier.
func (r *Reservation) CustomerID() kernel.UUID {
	return r.customerID
}

// Category returns the booked car category.
func (r *Reservation) Category() car.Category {
	return r.category
}

// Period returns the booking window.
func (r *Reservation) Period() kernel.Period {
	return r.period
}

// Status returns the current lifecycle state.
func (r *Reservation) Status() Status {
	return r.status
}

// CreatedAt returns the creation timestamp.
func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// ConfirmedAt returns the confirmation timestamp, nil before Confirm.
func (r *Reservation) ConfirmedAt() *time.Time {
	return r.confirmedAt
}

// CancelledAt returns the cancellation timestamp, nil before Cancel.
func (r *Reservation) CancelledAt() *time.Time {
	return r.cancelledAt
}

// ExpiredAt returns the expiry timestamp, nil before Expire.
func (r *Reservation) ExpiredAt() *time.Time {
	return r.expiredAt
}

// RentalID returns the linked rental's identifier, nil before pick-up.
func (r *Reservation) RentalID() *kernel.UUID {
	return r.rentalID
}

// ChangePeriod replaces the booking window wholesale.
// Allowed only while the reservation is a Draft.
func (r *Reservation) ChangePeriod(newPeriod kernel.Period) error {
	if err := r.status.ValidateChangePeriod(); err != nil {
		return err
	}

	return r.setPeriod(newPeriod)
}

// Confirm marks the reservation Confirmed at the given time.
//
// The caller must have already run the category-capacity check and
// aborted on conflict; the aggregate enforces only the state machine
// and the temporal-ordering invariant.
func (r *Reservation) Confirm(confirmedAt time.Time) error {
	if err := r.validateTransitionTime("confirmedAt", confirmedAt); err != nil {
		return err
	}

	newStatus, err := r.status.Confirm()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.confirmedAt = &confirmedAt
	return nil
}

// Cancel marks the reservation Cancelled at the given time.
// Allowed from Draft and Confirmed.
func (r *Reservation) Cancel(cancelledAt time.Time) error {
	if err := r.validateTransitionTime("cancelledAt", cancelledAt); err != nil {
		return err
	}

	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.cancelledAt = &cancelledAt
	return nil
}

// Expire marks a stale draft Expired at the given time.
func (r *Reservation) Expire(expiredAt time.Time) error {
	if err := r.validateTransitionTime("expiredAt", expiredAt); err != nil {
		return err
	}

	newStatus, err := r.status.Expire()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.expiredAt = &expiredAt
	return nil
}

// AssignRental links the rental created at pick-up. The assignment is
// idempotent: repeating it with the same identifier succeeds without
// effect, while a different identifier after one is already linked is
// rejected as a uniqueness violation.
func (r *Reservation) AssignRental(rentalID kernel.UUID) error {
	if err := rentalID.Validate(); err != nil {
		return err
	}

	if r.rentalID != nil {
		if r.rentalID.IsEqual(rentalID) {
			return nil
		}
		return errs.NewObjectAlreadyExistsErrorWithCause("rentalID", r.rentalID.String(),
			fmt.Errorf("reservation %s is already linked to a different rental", r.id))
	}

	r.rentalID = &rentalID
	return nil
}

// validateTransitionTime enforces the blanket invariant that lifecycle
// timestamps never precede the creation timestamp.
func (r *Reservation) validateTransitionTime(paramName string, at time.Time) error {
	if at.Before(r.createdAt) {
		return errs.NewInvalidTimestampErrorWithCause(paramName,
			fmt.Errorf("%s precedes createdAt %s",
				at.Format(time.RFC3339), r.createdAt.Format(time.RFC3339)))
	}
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Reservation) setCategory(category car.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	r.category = category
	return nil
}

func (r *Reservation) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	r.period = period
	return nil
}

func (r *Reservation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Reservation) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
