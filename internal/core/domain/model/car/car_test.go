package car_test

import (
	"testing"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCar(t *testing.T) *car.Car {
	t.Helper()
	c, err := car.NewCar(kernel.NewUUID(), car.Economy, "AB-123-CD", "Toyota", "Yaris")
	require.NoError(t, err)
	return c
}

func TestNewCar(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid car with all valid parameters", func(t *testing.T) {
		c, err := car.NewCar(validID, car.Suv, "XYZ-999", "Honda", "CR-V")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, car.Suv, c.Category())
		assert.Equal(t, car.Available, c.Status())
		assert.Equal(t, "XYZ-999", c.LicensePlate())
		assert.Equal(t, "Honda", c.Manufacturer())
		assert.Equal(t, "CR-V", c.Model())
		assert.True(t, c.IsOperational())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := car.NewCar(invalidID, car.Economy, "AB-123", "Toyota", "Yaris")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unknown category", func(t *testing.T) {
		c, err := car.NewCar(validID, car.CategoryUnknown, "AB-123", "Toyota", "Yaris")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty license plate", func(t *testing.T) {
		c, err := car.NewCar(validID, car.Economy, "", "Toyota", "Yaris")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed license plate", func(t *testing.T) {
		testCases := []string{"ab-123", "A", "AB_123", "-AB123", "AB123-"}
		for _, plate := range testCases {
			c, err := car.NewCar(validID, car.Economy, plate, "Toyota", "Yaris")

			require.Error(t, err, "plate %q should be rejected", plate)
			assert.Nil(t, c)
		}
	})

	t.Run("should fail with empty manufacturer or model", func(t *testing.T) {
		c, err := car.NewCar(validID, car.Economy, "AB-123", "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "manufacturer")
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("should fail validation for nil car", func(t *testing.T) {
		var c *car.Car

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, car.ErrCarIsNotConstructed, err)
	})
}

func TestCar_RentalTransitions(t *testing.T) {
	t.Run("available to rented and back", func(t *testing.T) {
		c := newTestCar(t)

		require.NoError(t, c.MarkAsRented())
		assert.Equal(t, car.Rented, c.Status())
		assert.False(t, c.IsOperational())

		require.NoError(t, c.MarkAsAvailable())
		assert.Equal(t, car.Available, c.Status())
		assert.True(t, c.IsOperational())
	})

	t.Run("renting a rented car fails with car-not-available", func(t *testing.T) {
		c := newTestCar(t)
		require.NoError(t, c.MarkAsRented())

		err := c.MarkAsRented()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), "car is not available")
	})

	t.Run("marking an available car as available fails", func(t *testing.T) {
		c := newTestCar(t)

		err := c.MarkAsAvailable()

		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})
}

func TestCar_MaintenanceTransitions(t *testing.T) {
	t.Run("available to maintenance and back", func(t *testing.T) {
		c := newTestCar(t)

		require.NoError(t, c.SendToMaintenance())
		assert.Equal(t, car.Maintenance, c.Status())

		require.NoError(t, c.ReturnFromMaintenance())
		assert.Equal(t, car.Available, c.Status())
	})

	t.Run("rented car cannot go to maintenance", func(t *testing.T) {
		c := newTestCar(t)
		require.NoError(t, c.MarkAsRented())

		err := c.SendToMaintenance()

		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("available car cannot return from maintenance", func(t *testing.T) {
		c := newTestCar(t)

		err := c.ReturnFromMaintenance()

		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})
}

func TestCar_Retire(t *testing.T) {
	t.Run("retire is allowed from any non-retired status", func(t *testing.T) {
		fromAvailable := newTestCar(t)
		require.NoError(t, fromAvailable.Retire())
		assert.Equal(t, car.Retired, fromAvailable.Status())

		fromRented := newTestCar(t)
		require.NoError(t, fromRented.MarkAsRented())
		require.NoError(t, fromRented.Retire())
		assert.Equal(t, car.Retired, fromRented.Status())

		fromMaintenance := newTestCar(t)
		require.NoError(t, fromMaintenance.SendToMaintenance())
		require.NoError(t, fromMaintenance.Retire())
		assert.Equal(t, car.Retired, fromMaintenance.Status())
	})

	t.Run("retire is idempotent", func(t *testing.T) {
		c := newTestCar(t)
		require.NoError(t, c.Retire())

		require.NoError(t, c.Retire())

		assert.Equal(t, car.Retired, c.Status())
	})

	t.Run("every other transition from retired fails", func(t *testing.T) {
		c := newTestCar(t)
		require.NoError(t, c.Retire())

		transitions := map[string]func() error{
			"MarkAsRented":          c.MarkAsRented,
			"MarkAsAvailable":       c.MarkAsAvailable,
			"SendToMaintenance":     c.SendToMaintenance,
			"ReturnFromMaintenance": c.ReturnFromMaintenance,
		}

		for name, transition := range transitions {
			err := transition()
			require.Error(t, err, "%s should fail on a retired car", name)
			require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
			assert.Equal(t, car.Retired, c.Status())
		}
	})
}

func TestRestoreCar(t *testing.T) {
	t.Run("should restore car with persisted status", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := car.RestoreCar(id, car.Midsize, car.Maintenance, "MN-456-OP", "Ford", "Focus")

		require.NoError(t, err)
		assert.Equal(t, car.Maintenance, c.Status())
		assert.Equal(t, car.Midsize, c.Category())
	})

	t.Run("should reject unknown persisted status", func(t *testing.T) {
		c, err := car.RestoreCar(kernel.NewUUID(), car.Midsize, car.Status(42), "MN-456", "Ford", "Focus")

		require.Error(t, err)
		assert.Nil(t, c)
	})
}
