package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rentedCarWithRental(t *testing.T) (*car.Car, *rental.Rental) {
	t.Helper()
	rentedCar := availableCar(t, car.Midsize, "MZ-100")
	require.NoError(t, rentedCar.MarkAsRented())
	activeRental, err := rental.NewRental(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rentedCar.ID(),
		handlerNow.Add(-48*time.Hour), 80, 30000)
	require.NoError(t, err)
	return rentedCar, activeRental
}

func TestReturnCarCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rentedCar, activeRental := rentedCarWithRental(t)
	cmd, err := commands.NewReturnCarCommand(activeRental.ID(), 60, 30400)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		rentalRepo.On("Get", ctx, activeRental.ID()).Return(activeRental, nil).Once(),
		carRepo.On("Get", ctx, rentedCar.ID()).Return(rentedCar, nil).Once(),
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*rental.Rental")).Return(nil).Once(),
		carRepo.On("Update", ctx, mock.AnythingOfType("*car.Car")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReturnUoWFactory(func() commands.ReturnUoW { return uow })
	handler := commands.NewReturnCarCommandHandler(factory, stubClock{now: handlerNow})

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, rental.Returned, activeRental.Status())
	assert.Equal(t, car.Available, rentedCar.Status())
	assert.True(t, activeRental.NeedsRefuelFee())
	rentalRepo.AssertExpectations(t)
	carRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReturnCarCommandHandler_Handle_DecreasingOdometer(t *testing.T) {
	ctx := t.Context()
	_, activeRental := rentedCarWithRental(t)
	cmd, err := commands.NewReturnCarCommand(activeRental.ID(), 60, 29999)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		rentalRepo.On("Get", ctx, activeRental.ID()).Return(activeRental, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReturnUoWFactory(func() commands.ReturnUoW { return uow })
	handler := commands.NewReturnCarCommandHandler(factory, stubClock{now: handlerNow})

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, activeRental.IsActive())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReturnCarCommandHandler_Handle_AlreadyReturned(t *testing.T) {
	ctx := t.Context()
	_, activeRental := rentedCarWithRental(t)
	require.NoError(t, activeRental.ReturnCar(handlerNow.Add(-time.Hour), 70, 30200))
	cmd, err := commands.NewReturnCarCommand(activeRental.ID(), 60, 30400)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		rentalRepo.On("Get", ctx, activeRental.ID()).Return(activeRental, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReturnUoWFactory(func() commands.ReturnUoW { return uow })
	handler := commands.NewReturnCarCommandHandler(factory, stubClock{now: handlerNow})

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
}
