package commands

import (
	"context"
)

// RetireCarCommandHandler handles permanent fleet removal. Retirement
// is terminal and idempotent: retiring an already-retired car succeeds
// without effect. The record stays for audit.
type RetireCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewRetireCarCommandHandler creates a handler for retirement
// operations.
func NewRetireCarCommandHandler(uowFactory CarUoWFactory) RetireCarCommandHandler {
	return RetireCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retirement command.
func (h RetireCarCommandHandler) Handle(ctx context.Context, cmd RetireCarCommand) error {
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

	if err = aggregate.Retire(); err != nil {
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
