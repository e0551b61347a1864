// Package postgres provides the GORM-based implementation of the Unit
// of Work pattern. A unit of work spans one business transaction: the
// repositories it hands out share the open transaction, aggregates
// touched along the way are tracked, and either everything commits or
// everything rolls back.
//
// The gorm connection must be opened with TranslateError enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey; the
// repositories map that onto the domain's already-exists error. The
// unique index on rentals.reservation_id is what guarantees at most
// one rental per reservation under concurrent pick-ups.
package postgres

import (
	"context"

	"rental/internal/adapters/out/postgres/carrepo"
	"rental/internal/adapters/out/postgres/customerrepo"
	"rental/internal/adapters/out/postgres/rentalrepo"
	"rental/internal/adapters/out/postgres/reservationrepo"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it run
// inside the current transaction; after Commit or Rollback the
// transaction is closed and cannot be reused.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CarRepository provides access to car persistence operations within
// the unit of work. Operations execute within the current transaction
// if one is active, otherwise on the main connection.
func (uow *GormUnitOfWork) CarRepository() ports.CarRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return carrepo.NewGormCarRepository(db, uow)
}

// ReservationRepository provides access to reservation persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) ReservationRepository() ports.ReservationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return reservationrepo.NewGormReservationRepository(db, uow)
}

// RentalRepository provides access to rental persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) RentalRepository() ports.RentalRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return rentalrepo.NewGormRentalRepository(db, uow)
}

// CustomerRepository provides access to customer persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return customerrepo.NewGormCustomerRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this
// unit of work. Called by the repository implementations on Add and
// Update; the tracked aggregates enable post-commit processing such as
// domain event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
