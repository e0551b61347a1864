// Package rentalrepo provides data transfer objects and mapping
// functions for rental persistence. The unique index on reservation_id
// is the storage-level guarantee that a reservation is fulfilled by at
// most one rental, even under concurrent pick-up requests.
package rentalrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"

	"github.com/google/uuid"
)

// RentalDTO represents the database structure for persisting rental
// aggregates. Hand-over readings (fuel, odometer) are stored twice:
// the out-columns at pick-up, the nullable in-columns at return.
type RentalDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReservationID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CarID         uuid.UUID `gorm:"type:uuid;index"`
	Status        int       `gorm:"index"`
	PickupAt      time.Time
	ReturnAt      *time.Time
	FuelLevelOut  int
	FuelLevelIn   *int
	KmOut         int
	KmIn          *int
}

// TableName specifies the database table name for rental entities.
func (RentalDTO) TableName() string {
	return "rentals"
}

// fromDomain converts a rental domain aggregate to its database
// representation.
func fromDomain(aggregate *rental.Rental) RentalDTO {
	return RentalDTO{
		ID:            aggregate.ID().Bytes(),
		ReservationID: aggregate.ReservationID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CarID:         aggregate.CarID().Bytes(),
		Status:        int(aggregate.Status()),
		PickupAt:      aggregate.PickupAt(),
		ReturnAt:      aggregate.ReturnAt(),
		FuelLevelOut:  aggregate.FuelLevelOut(),
		FuelLevelIn:   aggregate.FuelLevelIn(),
		KmOut:         aggregate.KmOut(),
		KmIn:          aggregate.KmIn(),
	}
}

// toDomain converts a database DTO to a rental domain aggregate using
// RestoreRental.
func toDomain(dto RentalDTO) (*rental.Rental, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reservationID, err := kernel.UUIDFromBytes(dto.ReservationID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	carID, err := kernel.UUIDFromBytes(dto.CarID[:])
	if err != nil {
		return nil, err
	}

	return rental.RestoreRental(
		id,
		reservationID,
		customerID,
		carID,
		rental.Status(dto.Status),
		dto.PickupAt,
		dto.ReturnAt,
		dto.FuelLevelOut,
		dto.FuelLevelIn,
		dto.KmOut,
		dto.KmIn,
	)
}
