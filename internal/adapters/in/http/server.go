// Package http exposes the booking engine over a REST API. It
// translates HTTP requests into commands and queries and maps domain
// error kinds onto status codes: not-found to 404, conflicts and
// illegal lifecycle transitions to 409, validation failures to 400.
package http

import (
	"errors"
	"net/http"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the booking API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler         commands.RegisterCustomerCommandHandler
	registerCarHandler              commands.RegisterCarCommandHandler
	sendCarToMaintenanceHandler     commands.SendCarToMaintenanceCommandHandler
	returnCarFromMaintenanceHandler commands.ReturnCarFromMaintenanceCommandHandler
	retireCarHandler                commands.RetireCarCommandHandler
	createReservationHandler        commands.CreateReservationCommandHandler
	changeReservationPeriodHandler  commands.ChangeReservationPeriodCommandHandler
	confirmReservationHandler       commands.ConfirmReservationCommandHandler
	cancelReservationHandler        commands.CancelReservationCommandHandler
	pickupCarHandler                commands.PickupCarCommandHandler
	returnCarHandler                commands.ReturnCarCommandHandler

	// Query handlers
	getCustomerReservationsHandler queries.GetCustomerReservationsQueryHandler
	getActiveRentalsHandler        queries.GetActiveRentalsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerCarHandler commands.RegisterCarCommandHandler,
	sendCarToMaintenanceHandler commands.SendCarToMaintenanceCommandHandler,
	returnCarFromMaintenanceHandler commands.ReturnCarFromMaintenanceCommandHandler,
	retireCarHandler commands.RetireCarCommandHandler,
	createReservationHandler commands.CreateReservationCommandHandler,
	changeReservationPeriodHandler commands.ChangeReservationPeriodCommandHandler,
	confirmReservationHandler commands.ConfirmReservationCommandHandler,
	cancelReservationHandler commands.CancelReservationCommandHandler,
	pickupCarHandler commands.PickupCarCommandHandler,
	returnCarHandler commands.ReturnCarCommandHandler,
	getCustomerReservationsHandler queries.GetCustomerReservationsQueryHandler,
	getActiveRentalsHandler queries.GetActiveRentalsQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:         registerCustomerHandler,
		registerCarHandler:              registerCarHandler,
		sendCarToMaintenanceHandler:     sendCarToMaintenanceHandler,
		returnCarFromMaintenanceHandler: returnCarFromMaintenanceHandler,
		retireCarHandler:                retireCarHandler,
		createReservationHandler:        createReservationHandler,
		changeReservationPeriodHandler:  changeReservationPeriodHandler,
		confirmReservationHandler:       confirmReservationHandler,
		cancelReservationHandler:        cancelReservationHandler,
		pickupCarHandler:                pickupCarHandler,
		returnCarHandler:                returnCarHandler,
		getCustomerReservationsHandler:  getCustomerReservationsHandler,
		getActiveRentalsHandler:         getActiveRentalsHandler,
	}
}

// RegisterRoutes binds the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers/:id/reservations", s.GetCustomerReservations)

	api.POST("/cars", s.RegisterCar)
	api.POST("/cars/:id/maintenance", s.SendCarToMaintenance)
	api.POST("/cars/:id/maintenance/complete", s.ReturnCarFromMaintenance)
	api.POST("/cars/:id/retire", s.RetireCar)

	api.POST("/reservations", s.CreateReservation)
	api.PUT("/reservations/:id/period", s.ChangeReservationPeriod)
	api.POST("/reservations/:id/confirm", s.ConfirmReservation)
	api.POST("/reservations/:id/cancel", s.CancelReservation)
	api.POST("/reservations/:id/pickup", s.PickupCar)

	api.POST("/rentals/:id/return", s.ReturnCar)
	api.GET("/rentals/active", s.GetActiveRentals)
}

// Error is the JSON error body returned by every failing handler.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// RegisterCustomerRequest is the body of POST /api/v1/customers.
// A blank id lets the server mint one.
type RegisterCustomerRequest struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenceNumber string `json:"licence_number"`
}

// RegisterCarRequest is the body of POST /api/v1/cars.
// A blank id lets the server mint one.
type RegisterCarRequest struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	LicensePlate string `json:"license_plate"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

// CreateReservationRequest is the body of POST /api/v1/reservations.
// A blank id lets the server mint one.
type CreateReservationRequest struct {
	ID          string    `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Category    string    `json:"category"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// ChangePeriodRequest is the body of PUT /api/v1/reservations/:id/period.
type ChangePeriodRequest struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// PickupCarRequest is the body of POST /api/v1/reservations/:id/pickup.
// A blank id lets the server mint the rental id.
type PickupCarRequest struct {
	ID           string `json:"id"`
	FuelLevelOut int    `json:"fuel_level_out"`
	KmOut        int    `json:"km_out"`
}

// ReturnCarRequest is the body of POST /api/v1/rentals/:id/return.
type ReturnCarRequest struct {
	FuelLevelIn int `json:"fuel_level_in"`
	KmIn        int `json:"km_in"`
}

// ReservationResponse is one row of a customer's booking history.
type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActiveRentalResponse is one rental currently on the road.
type ActiveRentalResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CarID         uuid.UUID `json:"car_id"`
	PickupAt      time.Time `json:"pickup_at"`
	FuelLevelOut  int       `json:"fuel_level_out"`
	KmOut         int       `json:"km_out"`
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := bodyUUID(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewRegisterCustomerCommand(
		customerID, req.FirstName, req.LastName, req.Email, req.Phone, req.LicenceNumber)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.Bytes()})
}

// RegisterCar handles POST /api/v1/cars.
func (s *Server) RegisterCar(ctx echo.Context) error {
	var req RegisterCarRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := car.CategoryFromString(req.Category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	carID, err := bodyUUID(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid car id")
	}

	cmd, err := commands.NewRegisterCarCommand(
		carID, category, req.LicensePlate, req.Manufacturer, req.Model)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: carID.Bytes()})
}

// SendCarToMaintenance handles POST /api/v1/cars/:id/maintenance.
func (s *Server) SendCarToMaintenance(ctx echo.Context) error {
	carID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid car id")
	}

	cmd, err := commands.NewSendCarToMaintenanceCommand(carID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.sendCarToMaintenanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnCarFromMaintenance handles POST /api/v1/cars/:id/maintenance/complete.
func (s *Server) ReturnCarFromMaintenance(ctx echo.Context) error {
	carID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid car id")
	}

	cmd, err := commands.NewReturnCarFromMaintenanceCommand(carID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.returnCarFromMaintenanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetireCar handles POST /api/v1/cars/:id/retire.
func (s *Server) RetireCar(ctx echo.Context) error {
	carID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid car id")
	}

	cmd, err := commands.NewRetireCarCommand(carID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.retireCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReservation handles POST /api/v1/reservations.
func (s *Server) CreateReservation(ctx echo.Context) error {
	var req CreateReservationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	category, err := car.CategoryFromString(req.Category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reservationID, err := bodyUUID(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	cmd, err := commands.NewCreateReservationCommand(
		reservationID, customerID, category, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reservationID.Bytes()})
}

// ChangeReservationPeriod handles PUT /api/v1/reservations/:id/period.
func (s *Server) ChangeReservationPeriod(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	var req ChangePeriodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeReservationPeriodCommand(reservationID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.changeReservationPeriodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmReservation handles POST /api/v1/reservations/:id/confirm.
func (s *Server) ConfirmReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	cmd, err := commands.NewConfirmReservationCommand(reservationID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.confirmReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel.
func (s *Server) CancelReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	cmd, err := commands.NewCancelReservationCommand(reservationID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupCar handles POST /api/v1/reservations/:id/pickup. On success
// the response carries the identifier of the created rental.
func (s *Server) PickupCar(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	var req PickupCarRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rentalID, err := bodyUUID(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid rental id")
	}

	cmd, err := commands.NewPickupCarCommand(rentalID, reservationID, req.FuelLevelOut, req.KmOut)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.pickupCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: rentalID.Bytes()})
}

// ReturnCar handles POST /api/v1/rentals/:id/return.
func (s *Server) ReturnCar(ctx echo.Context) error {
	rentalID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid rental id")
	}

	var req ReturnCarRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReturnCarCommand(rentalID, req.FuelLevelIn, req.KmIn)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.returnCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerReservations handles GET /api/v1/customers/:id/reservations.
func (s *Server) GetCustomerReservations(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerReservationsQuery(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reservations, err := s.getCustomerReservationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		response[i] = ReservationResponse{
			ID:          r.ID.Bytes(),
			Category:    r.Category,
			Status:      r.Status,
			PeriodStart: r.PeriodStart,
			PeriodEnd:   r.PeriodEnd,
			CreatedAt:   r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveRentals handles GET /api/v1/rentals/active.
func (s *Server) GetActiveRentals(ctx echo.Context) error {
	query := queries.NewGetActiveRentalsQuery()

	rentals, err := s.getActiveRentalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveRentalResponse, len(rentals))
	for i, r := range rentals {
		response[i] = ActiveRentalResponse{
			ID:            r.ID.Bytes(),
			ReservationID: r.ReservationID.Bytes(),
			CustomerID:    r.CustomerID.Bytes(),
			CarID:         r.CarID.Bytes(),
			PickupAt:      r.PickupAt,
			FuelLevelOut:  r.FuelLevelOut,
			KmOut:         r.KmOut,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a path parameter into a domain UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// bodyUUID resolves an optional id supplied in a request body: blank
// mints a fresh one, anything else must parse as a UUID.
func bodyUUID(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps a domain error kind onto an HTTP status code.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTimestamp):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
