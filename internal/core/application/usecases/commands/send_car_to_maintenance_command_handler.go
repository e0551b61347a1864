package commands

import (
	"context"
)

// SendCarToMaintenanceCommandHandler handles taking cars out of the
// rentable pool for servicing. Only Available cars can leave; a rented
// car must come back first.
type SendCarToMaintenanceCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewSendCarToMaintenanceCommandHandler creates a handler for
// maintenance hand-off operations.
func NewSendCarToMaintenanceCommandHandler(uowFactory CarUoWFactory) SendCarToMaintenanceCommandHandler {
	return SendCarToMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the maintenance hand-off command.
func (h SendCarToMaintenanceCommandHandler) Handle(ctx context.Context, cmd SendCarToMaintenanceCommand) error {
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

	carRepo := uow.CarRepository()
	aggregate, err := carRepo.Get(ctx, cmd.CarID())
	if err != nil {
		return err
	}

	if err = aggregate.SendToMaintenance(); err != nil {
		return err
	}

	if err = carRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
