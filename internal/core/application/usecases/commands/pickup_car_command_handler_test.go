package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedForPickup(t *testing.T, category car.Category) *reservation.Reservation {
	t.Helper()
	r := draftReservation(t, category, handlerNow.AddDate(0, 0, 1), handlerNow.AddDate(0, 0, 4))
	require.NoError(t, r.Confirm(handlerNow))
	return r
}

func TestPickupCarCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	confirmed := confirmedForPickup(t, car.Compact)
	rentalID := kernel.NewUUID()
	cmd, err := commands.NewPickupCarCommand(rentalID, confirmed.ID(), 90, 25000)
	require.NoError(t, err)

	fleetCar := availableCar(t, car.Compact, "CP-100")

	reservationRepo := new(MockReservationRepository)
	carRepo := new(MockCarRepository)
	rentalRepo := new(MockRentalRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		reservationRepo.On("Get", ctx, confirmed.ID()).Return(confirmed, nil).Once(),
		carRepo.On("GetAllByCategory", ctx, car.Compact).Return([]*car.Car{fleetCar}, nil).Once(),
		rentalRepo.On("GetAllActive", ctx).Return([]*rental.Rental{}, nil).Once(),
		reservationRepo.On("GetAllByIDs", ctx, []kernel.UUID{}).
			Return([]*reservation.Reservation{}, nil).Once(),
		rentalRepo.On("Add", ctx, mock.AnythingOfType("*rental.Rental")).Return(nil).Once(),
		reservationRepo.On("Update", ctx, mock.AnythingOfType("*reservation.Reservation")).Return(nil).Once(),
		carRepo.On("Update", ctx, mock.AnythingOfType("*car.Car")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncPickupUoWFactory(func() commands.PickupUoW { return uow })
	handler := commands.NewPickupCarCommandHandler(factory, stubClock{now: handlerNow})

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, car.Rented, fleetCar.Status())
	require.NotNil(t, confirmed.RentalID())
	assert.True(t, confirmed.RentalID().IsEqual(rentalID))

	addCall := rentalRepo.Calls[1]
	created := addCall.Arguments[1].(*rental.Rental)
	assert.True(t, created.ID().IsEqual(rentalID))
	assert.True(t, created.CarID().IsEqual(fleetCar.ID()))
	assert.Equal(t, 90, created.FuelLevelOut())
	assert.Equal(t, 25000, created.KmOut())
	assert.Equal(t, handlerNow, created.PickupAt())

	reservationRepo.AssertExpectations(t)
	carRepo.AssertExpectations(t)
	rentalRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickupCarCommandHandler_Handle_NotConfirmed(t *testing.T) {
	ctx := t.Context()
	draft := draftReservation(t, car.Compact, handlerNow.AddDate(0, 0, 1), handlerNow.AddDate(0, 0, 4))
	cmd, err := commands.NewPickupCarCommand(kernel.NewUUID(), draft.ID(), 90, 25000)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepository)
	carRepo := new(MockCarRepository)
	rentalRepo := new(MockRentalRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		reservationRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncPickupUoWFactory(func() commands.PickupUoW { return uow })
	handler := commands.NewPickupCarCommandHandler(factory, stubClock{now: handlerNow})

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	rentalRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestPickupCarCommandHandler_Handle_NoCarAvailable(t *testing.T) {
	ctx := t.Context()
	confirmed := confirmedForPickup(t, car.Compact)
	cmd, err := commands.NewPickupCarCommand(kernel.NewUUID(), confirmed.ID(), 90, 25000)
	require.NoError(t, err)

	// The only compact car is already out on an overlapping rental.
	fleetCar := availableCar(t, car.Compact, "CP-100")
	require.NoError(t, fleetCar.MarkAsRented())
	otherReservation := confirmedForPickup(t, car.Compact)
	activeRental, err := rental.NewRental(
		kernel.NewUUID(), otherReservation.ID(), otherReservation.CustomerID(), fleetCar.ID(),
		otherReservation.Period().Start(), 80, 10000)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepository)
	carRepo := new(MockCarRepository)
	rentalRepo := new(MockRentalRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		reservationRepo.On("Get", ctx, confirmed.ID()).Return(confirmed, nil).Once(),
		carRepo.On("GetAllByCategory", ctx, car.Compact).Return([]*car.Car{fleetCar}, nil).Once(),
		rentalRepo.On("GetAllActive", ctx).Return([]*rental.Rental{activeRental}, nil).Once(),
		reservationRepo.On("GetAllByIDs", ctx, []kernel.UUID{otherReservation.ID()}).
			Return([]*reservation.Reservation{otherReservation}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncPickupUoWFactory(func() commands.PickupUoW { return uow })
	handler := commands.NewPickupCarCommandHandler(factory, stubClock{now: handlerNow})

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoCarAvailable)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}
