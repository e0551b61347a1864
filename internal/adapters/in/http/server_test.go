package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	rentalhttp "rental/internal/adapters/in/http"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/person"
	"rental/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCustomerRepository struct{ mock.Mock }

func (m *mockCustomerRepository) Add(ctx context.Context, aggregate *person.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*person.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Customer), args.Error(1)
}

type mockCustomerUoW struct {
	mock.Mock
	customers *mockCustomerRepository
}

func (m *mockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

type funcCustomerUoWFactory func() commands.CustomerUoW

func (f funcCustomerUoWFactory) Create() commands.CustomerUoW { return f() }

func newCustomerServer(t *testing.T) *rentalhttp.Server {
	t.Helper()

	repo := &mockCustomerRepository{}
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)

	uow := &mockCustomerUoW{customers: repo}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := funcCustomerUoWFactory(func() commands.CustomerUoW { return uow })

	return rentalhttp.NewServer(
		commands.NewRegisterCustomerCommandHandler(factory),
		commands.RegisterCarCommandHandler{},
		commands.SendCarToMaintenanceCommandHandler{},
		commands.ReturnCarFromMaintenanceCommandHandler{},
		commands.RetireCarCommandHandler{},
		commands.CreateReservationCommandHandler{},
		commands.ChangeReservationPeriodCommandHandler{},
		commands.ConfirmReservationCommandHandler{},
		commands.CancelReservationCommandHandler{},
		commands.PickupCarCommandHandler{},
		commands.ReturnCarCommandHandler{},
		queries.GetCustomerReservationsQueryHandler{},
		queries.GetActiveRentalsQueryHandler{},
	)
}

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestServer_RegisterCustomer_IDHandling(t *testing.T) {
	validBody := func(id string) string {
		return `{"id":"` + id + `","first_name":"Ada","last_name":"Lovelace",` +
			`"email":"ada@example.com","phone":"+4912345678","licence_number":"DL-12345"}`
	}

	t.Run("supplied id is used for the created customer", func(t *testing.T) {
		server := newCustomerServer(t)
		supplied := uuid.New()
		ctx, rec := postJSON(t, validBody(supplied.String()))

		require.NoError(t, server.RegisterCustomer(ctx))

		require.Equal(t, http.StatusCreated, rec.Code)
		var created rentalhttp.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, supplied, created.ID)
	})

	t.Run("blank id gets a generated one", func(t *testing.T) {
		server := newCustomerServer(t)
		ctx, rec := postJSON(t, validBody(""))

		require.NoError(t, server.RegisterCustomer(ctx))

		require.Equal(t, http.StatusCreated, rec.Code)
		var created rentalhttp.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("malformed id is rejected with 400", func(t *testing.T) {
		server := newCustomerServer(t)
		ctx, rec := postJSON(t, validBody("not-a-uuid"))

		require.NoError(t, server.RegisterCustomer(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CreateEndpoints_MalformedBodyID(t *testing.T) {
	t.Run("register car", func(t *testing.T) {
		server := newCustomerServer(t)
		ctx, rec := postJSON(t,
			`{"id":"nope","category":"Economy","license_plate":"AB-123","manufacturer":"Toyota","model":"Corolla"}`)

		require.NoError(t, server.RegisterCar(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create reservation", func(t *testing.T) {
		server := newCustomerServer(t)
		ctx, rec := postJSON(t,
			`{"id":"nope","customer_id":"`+uuid.NewString()+`","category":"Economy",`+
				`"period_start":"2030-05-01T10:00:00Z","period_end":"2030-05-03T10:00:00Z"}`)

		require.NoError(t, server.CreateReservation(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pickup", func(t *testing.T) {
		server := newCustomerServer(t)
		ctx, rec := postJSON(t, `{"id":"nope","fuel_level_out":90,"km_out":1000}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues(uuid.NewString())

		require.NoError(t, server.PickupCar(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
