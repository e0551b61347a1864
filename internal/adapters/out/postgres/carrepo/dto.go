// Package carrepo provides data transfer objects and mapping functions
// for car persistence. It implements the repository pattern for the car
// domain aggregate, handling the conversion between domain entities and
// database representations.
package carrepo

import (
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarDTO represents the database structure for persisting car
// aggregates. The category and status columns are indexed because the
// availability engine loads the fleet by category, and the licence
// plate carries a unique index so the same physical car cannot be
// registered twice.
type CarDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category     int       `gorm:"index"`
	Status       int       `gorm:"index"`
	LicensePlate string    `gorm:"uniqueIndex"`
	Manufacturer string
	Model        string
}

// TableName specifies the database table name for car entities.
func (CarDTO) TableName() string {
	return "cars"
}

// fromDomain converts a car domain aggregate to its database
// representation.
func fromDomain(aggregate *car.Car) CarDTO {
	return CarDTO{
		ID:           aggregate.ID().Bytes(),
		Category:     int(aggregate.Category()),
		Status:       int(aggregate.Status()),
		LicensePlate: aggregate.LicensePlate(),
		Manufacturer: aggregate.Manufacturer(),
		Model:        aggregate.Model(),
	}
}

// toDomain converts a database DTO to a car domain aggregate using
// RestoreCar, so the loaded car enforces the same invariants as one
// registered through the domain.
func toDomain(dto CarDTO) (*car.Car, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return car.RestoreCar(
		id,
		car.Category(dto.Category),
		car.Status(dto.Status),
		dto.LicensePlate,
		dto.Manufacturer,
		dto.Model,
	)
}
