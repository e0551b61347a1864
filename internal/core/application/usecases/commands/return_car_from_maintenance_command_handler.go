package commands

import (
	"context"
)

// ReturnCarFromMaintenanceCommandHandler handles bringing serviced
// cars back into the Available pool, where they count towards category
// capacity again.
type ReturnCarFromMaintenanceCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewReturnCarFromMaintenanceCommandHandler creates a handler for
// maintenance return operations.
func NewReturnCarFromMaintenanceCommandHandler(
	uowFactory CarUoWFactory,
) ReturnCarFromMaintenanceCommandHandler {
	return ReturnCarFromMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the maintenance return command.
func (h ReturnCarFromMaintenanceCommandHandler) Handle(
	ctx context.Context, cmd ReturnCarFromMaintenanceCommand,
) error {
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

	if err = aggregate.ReturnFromMaintenance(); err != nil {
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
