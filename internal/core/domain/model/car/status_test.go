package car_test

import (
	"testing"

	"rental/internal/core/domain/model/car"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []car.Status{car.Available, car.Rented, car.Maintenance, car.Retired}
	for _, s := range valid {
		require.NoError(t, s.Validate(), "%s should be valid", s)
	}

	require.Error(t, car.StatusUnknown.Validate())
	require.Error(t, car.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Available", car.Available.String())
	assert.Equal(t, "Rented", car.Rented.String())
	assert.Equal(t, "Maintenance", car.Maintenance.String())
	assert.Equal(t, "Retired", car.Retired.String())
	assert.Equal(t, "Unknown", car.StatusUnknown.String())
	assert.Equal(t, "Unknown", car.Status(99).String())
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		name       string
		from       car.Status
		transition func(car.Status) (car.Status, error)
		want       car.Status
		wantErr    bool
	}{
		{"available can be rented", car.Available, car.Status.MarkAsRented, car.Rented, false},
		{"rented cannot be rented", car.Rented, car.Status.MarkAsRented, 0, true},
		{"maintenance cannot be rented", car.Maintenance, car.Status.MarkAsRented, 0, true},
		{"rented can become available", car.Rented, car.Status.MarkAsAvailable, car.Available, false},
		{"maintenance cannot become available via rental path", car.Maintenance, car.Status.MarkAsAvailable, 0, true},
		{"available can go to maintenance", car.Available, car.Status.SendToMaintenance, car.Maintenance, false},
		{"rented cannot go to maintenance", car.Rented, car.Status.SendToMaintenance, 0, true},
		{"maintenance can return", car.Maintenance, car.Status.ReturnFromMaintenance, car.Available, false},
		{"available cannot return from maintenance", car.Available, car.Status.ReturnFromMaintenance, 0, true},
		{"available can retire", car.Available, car.Status.Retire, car.Retired, false},
		{"rented can retire", car.Rented, car.Status.Retire, car.Retired, false},
		{"retired can retire again", car.Retired, car.Status.Retire, car.Retired, false},
		{"retired cannot be rented", car.Retired, car.Status.MarkAsRented, 0, true},
		{"retired cannot become available", car.Retired, car.Status.MarkAsAvailable, 0, true},
		{"retired cannot go to maintenance", car.Retired, car.Status.SendToMaintenance, 0, true},
		{"retired cannot return from maintenance", car.Retired, car.Status.ReturnFromMaintenance, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.transition(tc.from)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
