package services

import (
	"fmt"
	"sort"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/pkg/errs"
)

// AvailabilityService is a domain service answering two questions over
// the fleet and the booking book:
//
//   - may one more reservation be confirmed for a category and window
//     without overbooking it (CheckCategoryCapacity)
//   - which concrete car can be handed over for a window
//     (IsCarAvailable, FindAvailableCar, FindAvailableCars)
//
// Capacity counts only cars in Available status: Rented cars are
// temporarily out and come back, but Maintenance and Retired cars must
// not back confirmed reservations. Overlap is computed on half-open
// windows, so back-to-back bookings never conflict.
//
// The service is stateless; callers load the relevant cars,
// reservations, and rentals inside their transaction and pass them in.
type AvailabilityService struct{}

// NewAvailabilityService creates a new AvailabilityService instance.
func NewAvailabilityService() AvailabilityService {
	return AvailabilityService{}
}

// CheckCategoryCapacity verifies that confirming one more reservation
// for the category and period would not overbook the category.
//
// Parameters:
//   - category: the booked car category
//   - period: the booking window being confirmed
//   - ignoreReservationID: the reservation being confirmed, excluded
//     from the overlap count so it never conflicts with itself
//   - cars: the full fleet of the category (any status)
//   - confirmed: the Confirmed reservations of the category
//
// Returns nil when capacity remains, a conflict error wrapping
// errs.ErrConflict otherwise.
func (s AvailabilityService) CheckCategoryCapacity(
	category car.Category,
	period kernel.Period,
	ignoreReservationID kernel.UUID,
	cars []*car.Car,
	confirmed []*reservation.Reservation,
) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if err := period.Validate(); err != nil {
		return err
	}

	capacity := 0
	for _, c := range cars {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.Category() == category && c.IsOperational() {
			capacity++
		}
	}

	if capacity == 0 {
		return errs.NewConflictErrorWithCause("category",
			fmt.Errorf("no rentable %s cars in the fleet", category))
	}

	overlapping := 0
	for _, r := range confirmed {
		if err := r.Validate(); err != nil {
			return err
		}
		if r.Status() != reservation.Confirmed || r.Category() != category {
			continue
		}
		if r.ID().IsEqual(ignoreReservationID) {
			continue
		}

		overlaps, err := r.Period().Overlaps(period)
		if err != nil {
			return err
		}
		if overlaps {
			overlapping++
		}
	}

	if overlapping >= capacity {
		return errs.NewConflictErrorWithCause("period",
			fmt.Errorf("%d confirmed reservations already overlap the window, capacity is %d",
				overlapping, capacity))
	}

	return nil
}

// IsCarAvailable reports whether the car is free over the period.
//
// A car is busy iff some Active rental references it and the Confirmed
// reservation that rental fulfils has a window overlapping the period.
// Rentals are joined to reservations by reservation identifier; a
// rental whose reservation is absent from the slice is skipped.
func (s AvailabilityService) IsCarAvailable(
	carID kernel.UUID,
	period kernel.Period,
	rentals []*rental.Rental,
	reservations []*reservation.Reservation,
) (bool, error) {
	if err := carID.Validate(); err != nil {
		return false, err
	}
	if err := period.Validate(); err != nil {
		return false, err
	}

	byID := make(map[kernel.UUID]*reservation.Reservation, len(reservations))
	for _, r := range reservations {
		if err := r.Validate(); err != nil {
			return false, err
		}
		byID[r.ID()] = r
	}

	for _, rent := range rentals {
		if err := rent.Validate(); err != nil {
			return false, err
		}
		if !rent.IsActive() || !rent.CarID().IsEqual(carID) {
			continue
		}

		res, ok := byID[rent.ReservationID()]
		if !ok || res.Status() != reservation.Confirmed {
			continue
		}

		overlaps, err := res.Period().Overlaps(period)
		if err != nil {
			return false, err
		}
		if overlaps {
			return false, nil
		}
	}

	return true, nil
}

// FindAvailableCar selects the car to hand over for a category and
// window: the first free car among the category's Available cars in
// ascending identifier order. The ordering makes the selection
// deterministic for a given fleet state. Returns (nil, nil) when no
// car qualifies.
func (s AvailabilityService) FindAvailableCar(
	category car.Category,
	period kernel.Period,
	cars []*car.Car,
	rentals []*rental.Rental,
	reservations []*reservation.Reservation,
) (*car.Car, error) {
	found, err := s.FindAvailableCars(category, period, cars, rentals, reservations, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// FindAvailableCars returns up to limit free cars of the category over
// the period, in ascending identifier order.
func (s AvailabilityService) FindAvailableCars(
	category car.Category,
	period kernel.Period,
	cars []*car.Car,
	rentals []*rental.Rental,
	reservations []*reservation.Reservation,
	limit int,
) ([]*car.Car, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is not a positive limit", limit))
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	var candidates []*car.Car
	for _, c := range cars {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.Category() == category && c.IsOperational() {
			candidates = append(candidates, c)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().String() < candidates[j].ID().String()
	})

	var found []*car.Car
	for _, c := range candidates {
		free, err := s.IsCarAvailable(c.ID(), period, rentals, reservations)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}

		found = append(found, c)
		if len(found) == limit {
			break
		}
	}

	return found, nil
}
