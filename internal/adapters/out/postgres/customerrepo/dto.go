// Package customerrepo provides data transfer objects and mapping
// functions for customer persistence.
package customerrepo

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/person"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting
// customer records. The email carries a unique index so a customer
// cannot register twice with the same address.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string
	LastName      string
	Email         string `gorm:"uniqueIndex"`
	Phone         string
	LicenceNumber string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer record to its database representation.
func fromDomain(aggregate *person.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		LicenceNumber: aggregate.LicenceNumber(),
	}
}

// toDomain converts a database DTO to a customer record using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*person.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return person.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		dto.LicenceNumber,
	)
}
