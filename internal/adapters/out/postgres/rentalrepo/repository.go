package rentalrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRentalRepository implements RentalRepository using GORM.
type GormRentalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentalRepository creates a new GORM rental repository.
func NewGormRentalRepository(db *gorm.DB, tracker aggregateTracker) *GormRentalRepository {
	return &GormRentalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rental to the database. When a rental already exists
// for the same reservation the unique index rejects the insert and the
// violation is reported as an already-exists error; of two concurrent
// pick-ups for one reservation the transaction that commits second
// fails here.
func (r *GormRentalRepository) Add(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"reservationID", aggregate.ReservationID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rental to the database.
func (r *GormRentalRepository) Update(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RentalDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rental by ID.
func (r *GormRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RentalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rental", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all rentals whose car is still out.
func (r *GormRentalRepository) GetAllActive(ctx context.Context) ([]*rental.Rental, error) {
	var dtos []RentalDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(rental.Active)).Error; err != nil {
		return nil, err
	}

	rentals := make([]*rental.Rental, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, aggregate)
	}

	return rentals, nil
}
