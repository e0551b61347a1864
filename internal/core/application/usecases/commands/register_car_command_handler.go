package commands

import (
	"context"

	"rental/internal/core/domain/model/car"
)

// RegisterCarCommandHandler handles fleet registration. The licence
// plate is unique across the fleet; storage rejects duplicates with an
// already-exists error.
type RegisterCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewRegisterCarCommandHandler creates a handler for car registration
// operations.
func NewRegisterCarCommandHandler(uowFactory CarUoWFactory) RegisterCarCommandHandler {
	return RegisterCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The new car starts in
// Available status and immediately counts towards category capacity.
func (h RegisterCarCommandHandler) Handle(ctx context.Context, cmd RegisterCarCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCar, err := car.NewCar(
		cmd.CarID(), cmd.Category(), cmd.LicensePlate(), cmd.Manufacturer(), cmd.Model())
	if err != nil {
		return err
	}

	if err = uow.CarRepository().Add(ctx, newCar); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
