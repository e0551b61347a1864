package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerReservationsQueryHandler retrieves a customer's booking
// history from the database. Terminal reservations are included; the
// book is never pruned.
type GetCustomerReservationsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerReservationsQueryHandler creates a handler for
// customer booking-history queries.
func NewGetCustomerReservationsQueryHandler(db *gorm.DB) GetCustomerReservationsQueryHandler {
	return GetCustomerReservationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetCustomerReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerReservationsQuery,
) ([]GetCustomerReservationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reservations := make([]GetCustomerReservationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			status,
			period_start,
			period_end,
			created_at
		FROM reservations
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerReservationsQueryResponse
		var id uuid.UUID
		var category, status int
		var periodStart, periodEnd, createdAt time.Time

		err = rows.Scan(
			&id,
			&category,
			&status,
			&periodStart,
			&periodEnd,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		reservationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = reservationID
		resp.Category = car.Category(category).String()
		resp.Status = reservation.Status(status).String()
		resp.PeriodStart = periodStart
		resp.PeriodEnd = periodEnd
		resp.CreatedAt = createdAt
		reservations = append(reservations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
