package carrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarRepository implements CarRepository using GORM.
type GormCarRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarRepository creates a new GORM car repository.
func NewGormCarRepository(db *gorm.DB, tracker aggregateTracker) *GormCarRepository {
	return &GormCarRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new car to the database. A duplicate licence plate is
// reported as an already-exists error.
func (r *GormCarRepository) Add(ctx context.Context, aggregate *car.Car) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("car", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing car to the database.
func (r *GormCarRepository) Update(ctx context.Context, aggregate *car.Car) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CarDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a car by ID.
func (r *GormCarRepository) Get(ctx context.Context, id kernel.UUID) (*car.Car, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("car", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCategory retrieves every car of a category regardless of
// status.
func (r *GormCarRepository) GetAllByCategory(ctx context.Context, category car.Category) ([]*car.Car, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []CarDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "category = ?", int(category)).Error; err != nil {
		return nil, err
	}

	cars := make([]*car.Car, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, nil
}
