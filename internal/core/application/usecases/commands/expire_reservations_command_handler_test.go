package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staleDraft(t *testing.T) *reservation.Reservation {
	t.Helper()
	p, err := kernel.NewPeriod(handlerNow.AddDate(0, 0, 7), handlerNow.AddDate(0, 0, 10))
	require.NoError(t, err)
	r, err := reservation.NewReservation(
		kernel.NewUUID(), kernel.NewUUID(), car.Economy, p, handlerNow.Add(-72*time.Hour))
	require.NoError(t, err)
	return r
}

func TestExpireReservationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ttl := 24 * time.Hour
	cmd, err := commands.NewExpireReservationsCommand(ttl)
	require.NoError(t, err)

	first := staleDraft(t)
	second := staleDraft(t)

	reservationRepo := new(MockReservationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("GetDraftsCreatedBefore", ctx, handlerNow.Add(-ttl)).
			Return([]*reservation.Reservation{first, second}, nil).Once(),
		reservationRepo.On("Update", ctx, first).Return(nil).Once(),
		reservationRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReservationUoWFactory(func() commands.ReservationUoW { return uow })
	handler := commands.NewExpireReservationsCommandHandler(
		factory, stubClock{now: handlerNow}, slog.Default())

	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, reservation.Expired, first.Status())
	assert.Equal(t, reservation.Expired, second.Status())
	reservationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireReservationsCommandHandler_Handle_SkipsFailures(t *testing.T) {
	ctx := t.Context()
	ttl := 24 * time.Hour
	cmd, err := commands.NewExpireReservationsCommand(ttl)
	require.NoError(t, err)

	expirable := staleDraft(t)
	alreadyConfirmed := staleDraft(t)
	require.NoError(t, alreadyConfirmed.Confirm(handlerNow.Add(-time.Hour)))

	reservationRepo := new(MockReservationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("GetDraftsCreatedBefore", ctx, handlerNow.Add(-ttl)).
			Return([]*reservation.Reservation{alreadyConfirmed, expirable}, nil).Once(),
		reservationRepo.On("Update", ctx, expirable).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReservationUoWFactory(func() commands.ReservationUoW { return uow })
	handler := commands.NewExpireReservationsCommandHandler(
		factory, stubClock{now: handlerNow}, slog.Default())

	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, reservation.Confirmed, alreadyConfirmed.Status())
	assert.Equal(t, reservation.Expired, expirable.Status())
	reservationRepo.AssertExpectations(t)
}

func TestExpireReservationsCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpireReservationsCommand(time.Hour)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("GetDraftsCreatedBefore", ctx, handlerNow.Add(-time.Hour)).
			Return([]*reservation.Reservation{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := FuncReservationUoWFactory(func() commands.ReservationUoW { return uow })
	handler := commands.NewExpireReservationsCommandHandler(
		factory, stubClock{now: handlerNow}, slog.Default())

	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, expired)
}

func TestNewExpireReservationsCommand_NegativeTTL(t *testing.T) {
	_, err := commands.NewExpireReservationsCommand(-time.Minute)

	require.Error(t, err)
}
