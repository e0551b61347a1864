package reservationrepo

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reservation to the database.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *reservation.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("reservation", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing reservation to the database.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *reservation.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the reservations with the given identifiers.
// Identifiers without a matching row are silently skipped.
func (r *GormReservationRepository) GetAllByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*reservation.Reservation, error) {
	if len(ids) == 0 {
		return []*reservation.Reservation{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ReservationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetConfirmedByCategory retrieves all Confirmed reservations of a
// category for the capacity check.
func (r *GormReservationRepository) GetConfirmedByCategory(
	ctx context.Context,
	category car.Category,
) ([]*reservation.Reservation, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "category = ? AND status = ?", int(category), int(reservation.Confirmed)).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetDraftsCreatedBefore retrieves Draft reservations created at or
// before the cutoff for the expiry sweep.
func (r *GormReservationRepository) GetDraftsCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*reservation.Reservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND created_at <= ?", int(reservation.Draft), cutoff).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormReservationRepository) toDomainAll(dtos []ReservationDTO) ([]*reservation.Reservation, error) {
	reservations := make([]*reservation.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, aggregate)
	}

	return reservations, nil
}
