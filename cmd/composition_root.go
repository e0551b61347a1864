package cmd

import (
	"log/slog"
	"time"

	"rental/internal/adapters/out/postgres"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCarCommandHandler() commands.RegisterCarCommandHandler {
	return commands.NewRegisterCarCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateSendCarToMaintenanceCommandHandler() commands.SendCarToMaintenanceCommandHandler {
	return commands.NewSendCarToMaintenanceCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateReturnCarFromMaintenanceCommandHandler() commands.ReturnCarFromMaintenanceCommandHandler {
	return commands.NewReturnCarFromMaintenanceCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateRetireCarCommandHandler() commands.RetireCarCommandHandler {
	return commands.NewRetireCarCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateCreateReservationCommandHandler() commands.CreateReservationCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReservationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeReservationPeriodCommandHandler() commands.ChangeReservationPeriodCommandHandler {
	return commands.NewChangeReservationPeriodCommandHandler(c.reservationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmReservationCommandHandler() commands.ConfirmReservationCommandHandler {
	var f commands.CapacityUoWFactory = FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReservationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelReservationCommandHandler() commands.CancelReservationCommandHandler {
	return commands.NewCancelReservationCommandHandler(c.reservationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireReservationsCommandHandler() commands.ExpireReservationsCommandHandler {
	return commands.NewExpireReservationsCommandHandler(c.reservationUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreatePickupCarCommandHandler() commands.PickupCarCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupCarCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReturnCarCommandHandler() commands.ReturnCarCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnCarCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetCustomerReservationsQueryHandler() queries.GetCustomerReservationsQueryHandler {
	return queries.NewGetCustomerReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRentalsQueryHandler() queries.GetActiveRentalsQueryHandler {
	return queries.NewGetActiveRentalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) carUoWFactory() commands.CarUoWFactory {
	return FuncCarUoWFactory(func() commands.CarUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

// systemClock is the production Clock backed by the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type FuncCarUoWFactory func() commands.CarUoW

func (f FuncCarUoWFactory) Create() commands.CarUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}
