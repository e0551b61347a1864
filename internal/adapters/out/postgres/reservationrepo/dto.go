// Package reservationrepo provides data transfer objects and mapping
// functions for reservation persistence. Reservation rows are never
// deleted; terminal reservations remain queryable for audit.
package reservationrepo

import (
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting
// reservation aggregates. The customer column is indexed for the
// booking-history query; category and status are indexed for the
// capacity check and the expiry sweep. The booking window is flattened
// into two timestamp columns.
type ReservationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Category    int       `gorm:"index"`
	Status      int       `gorm:"index"`
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	ExpiredAt   *time.Time
	RentalID    *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

// fromDomain converts a reservation domain aggregate to its database
// representation.
func fromDomain(aggregate *reservation.Reservation) ReservationDTO {
	var rentalID *uuid.UUID
	if id := aggregate.RentalID(); id != nil {
		raw := id.Bytes()
		rentalID = &raw
	}

	return ReservationDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Category:    int(aggregate.Category()),
		Status:      int(aggregate.Status()),
		PeriodStart: aggregate.Period().Start(),
		PeriodEnd:   aggregate.Period().End(),
		CreatedAt:   aggregate.CreatedAt(),
		ConfirmedAt: aggregate.ConfirmedAt(),
		CancelledAt: aggregate.CancelledAt(),
		ExpiredAt:   aggregate.ExpiredAt(),
		RentalID:    rentalID,
	}
}

// toDomain converts a database DTO to a reservation domain aggregate.
// Reconstructs the full lifecycle state including the rental link using
// RestoreReservation.
func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewPeriod(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var rentalID *kernel.UUID
	if dto.RentalID != nil {
		rID, rentalErr := kernel.UUIDFromBytes((*dto.RentalID)[:])
		if rentalErr != nil {
			return nil, rentalErr
		}

		rentalID = &rID
	}

	return reservation.RestoreReservation(
		id,
		customerID,
		car.Category(dto.Category),
		period,
		reservation.Status(dto.Status),
		dto.CreatedAt,
		dto.ConfirmedAt,
		dto.CancelledAt,
		dto.ExpiredAt,
		rentalID,
	)
}
