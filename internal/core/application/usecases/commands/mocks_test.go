package commands_test

import (
	"context"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/person"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// stubClock pins "now" so the future-only and timestamp rules are
// deterministic in tests.
type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

type MockCarRepository struct{ mock.Mock }

func (m *MockCarRepository) Add(ctx context.Context, aggregate *car.Car) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, aggregate *car.Car) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarRepository) Get(ctx context.Context, id kernel.UUID) (*car.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*car.Car), args.Error(1)
}

func (m *MockCarRepository) GetAllByCategory(ctx context.Context, category car.Category) ([]*car.Car, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*car.Car), args.Error(1)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Add(ctx context.Context, aggregate *reservation.Reservation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, aggregate *reservation.Reservation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetAllByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetConfirmedByCategory(
	ctx context.Context, category car.Category,
) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetDraftsCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

type MockRentalRepository struct{ mock.Mock }

func (m *MockRentalRepository) Add(ctx context.Context, aggregate *rental.Rental) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRentalRepository) Update(ctx context.Context, aggregate *rental.Rental) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Rental), args.Error(1)
}

func (m *MockRentalRepository) GetAllActive(ctx context.Context) ([]*rental.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rental.Rental), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *person.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*person.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Customer), args.Error(1)
}

// MockUoW satisfies every typed unit-of-work interface in this
// package; tests set expectations only for the repositories the
// handler under test touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CarRepository() ports.CarRepository {
	args := m.Called()
	return args.Get(0).(ports.CarRepository)
}

func (m *MockUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

func (m *MockUoW) RentalRepository() ports.RentalRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW { return f() }

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW { return f() }

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW { return f() }

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW { return f() }

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW { return f() }

type FuncCarUoWFactory func() commands.CarUoW

func (f FuncCarUoWFactory) Create() commands.CarUoW { return f() }

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW { return f() }
