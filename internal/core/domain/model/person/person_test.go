package person_test

import (
	"testing"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/person"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := person.NewCustomer(id, "Ada", "Lovelace", "ada@example.com", "+442071234567", "DL-1234567")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ada Lovelace", c.FullName())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "+442071234567", c.Phone())
		assert.Equal(t, "DL-1234567", c.LicenceNumber())
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := person.NewCustomer(
			kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", "DL-1234567")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should fail with invalid contact details", func(t *testing.T) {
		testCases := []struct {
			name                string
			firstName, lastName string
			email, phone        string
		}{
			{"missing first name", "", "Lovelace", "ada@example.com", ""},
			{"missing last name", "Ada", "", "ada@example.com", ""},
			{"missing email", "Ada", "Lovelace", "", ""},
			{"malformed email", "Ada", "Lovelace", "not-an-email", ""},
			{"non e164 phone", "Ada", "Lovelace", "ada@example.com", "020 7123 4567"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := person.NewCustomer(
					kernel.NewUUID(), tc.firstName, tc.lastName, tc.email, tc.phone, "DL-1234567")

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Nil(t, c)
			})
		}
	})

	t.Run("should fail without licence number", func(t *testing.T) {
		c, err := person.NewCustomer(
			kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail validation for nil customer", func(t *testing.T) {
		var c *person.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, person.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_UpdateContact(t *testing.T) {
	c, err := person.NewCustomer(
		kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", "DL-1234567")
	require.NoError(t, err)

	t.Run("valid update replaces details", func(t *testing.T) {
		require.NoError(t, c.UpdateContact("Ada", "King", "ada.king@example.com", "+442071234567"))

		assert.Equal(t, "Ada King", c.FullName())
		assert.Equal(t, "ada.king@example.com", c.Email())
	})

	t.Run("invalid update leaves details unchanged", func(t *testing.T) {
		err := c.UpdateContact("Ada", "King", "broken", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "ada.king@example.com", c.Email())
	})
}

func TestNewEmployee(t *testing.T) {
	t.Run("should create employee with all valid parameters", func(t *testing.T) {
		e, err := person.NewEmployee(
			kernel.NewUUID(), "Grace", "Hopper", "grace@example.com", "", person.FleetManager)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "Grace Hopper", e.FullName())
		assert.Equal(t, person.FleetManager, e.Role())
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		e, err := person.NewEmployee(
			kernel.NewUUID(), "Grace", "Hopper", "grace@example.com", "", person.RoleUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, e)
	})

	t.Run("should share contact validation with customers", func(t *testing.T) {
		e, err := person.NewEmployee(
			kernel.NewUUID(), "", "Hopper", "grace@example.com", "", person.RentalAgent)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, e)
	})
}

func TestRoleFromString(t *testing.T) {
	role, err := person.RoleFromString("RentalAgent")
	require.NoError(t, err)
	assert.Equal(t, person.RentalAgent, role)

	role, err = person.RoleFromString("FleetManager")
	require.NoError(t, err)
	assert.Equal(t, person.FleetManager, role)

	_, err = person.RoleFromString("Janitor")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
