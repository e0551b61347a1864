package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveRentalsQueryHandler retrieves the rentals currently on the
// road from the database.
type GetActiveRentalsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRentalsQueryHandler creates a handler for active rental
// queries.
func NewGetActiveRentalsQueryHandler(db *gorm.DB) GetActiveRentalsQueryHandler {
	return GetActiveRentalsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by pick-up time, the
// longest-running rental first.
func (h GetActiveRentalsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRentalsQuery,
) ([]GetActiveRentalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rentals := make([]GetActiveRentalsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reservation_id,
			customer_id,
			car_id,
			pickup_at,
			fuel_level_out,
			km_out
		FROM rentals
		WHERE status = ?
		ORDER BY pickup_at
	`, rental.Active).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveRentalsQueryResponse
		var id, reservationID, customerID, carID uuid.UUID
		var pickupAt time.Time
		var fuelLevelOut, kmOut int

		err = rows.Scan(
			&id,
			&reservationID,
			&customerID,
			&carID,
			&pickupAt,
			&fuelLevelOut,
			&kmOut,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ReservationID, err = kernel.UUIDFromBytes(reservationID[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.CarID, err = kernel.UUIDFromBytes(carID[:]); err != nil {
			return nil, err
		}
		resp.PickupAt = pickupAt
		resp.FuelLevelOut = fuelLevelOut
		resp.KmOut = kmOut
		rentals = append(rentals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rentals, nil
}
