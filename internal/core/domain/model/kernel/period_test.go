package kernel_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, start, end time.Time) kernel.Period {
	t.Helper()
	p, err := kernel.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create period when start is before end", func(t *testing.T) {
		p, err := kernel.NewPeriod(base, base.Add(24*time.Hour))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, base, p.Start())
		assert.Equal(t, base.Add(24*time.Hour), p.End())
		assert.Equal(t, 24*time.Hour, p.Duration())
	})

	t.Run("should fail when start equals end", func(t *testing.T) {
		_, err := kernel.NewPeriod(base, base)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail when start is after end", func(t *testing.T) {
		_, err := kernel.NewPeriod(base.Add(time.Hour), base)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.Period

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPeriodIsNotConstructed, err)
	})
}

func TestPeriod_Overlaps(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	testCases := []struct {
		name     string
		p1       [2]time.Duration
		p2       [2]time.Duration
		overlaps bool
	}{
		{"identical windows", [2]time.Duration{0, day}, [2]time.Duration{0, day}, true},
		{"partial overlap", [2]time.Duration{0, 2 * day}, [2]time.Duration{day, 3 * day}, true},
		{"containment", [2]time.Duration{0, 4 * day}, [2]time.Duration{day, 2 * day}, true},
		{"back-to-back windows do not overlap", [2]time.Duration{0, day}, [2]time.Duration{day, 2 * day}, false},
		{"disjoint windows", [2]time.Duration{0, day}, [2]time.Duration{2 * day, 3 * day}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p1 := mustPeriod(t, base.Add(tc.p1[0]), base.Add(tc.p1[1]))
			p2 := mustPeriod(t, base.Add(tc.p2[0]), base.Add(tc.p2[1]))

			got, err := p1.Overlaps(p2)
			require.NoError(t, err)
			assert.Equal(t, tc.overlaps, got)

			// Overlap is symmetric.
			mirrored, err := p2.Overlaps(p1)
			require.NoError(t, err)
			assert.Equal(t, got, mirrored)
		})
	}

	t.Run("should fail against unconstructed period", func(t *testing.T) {
		p := mustPeriod(t, base, base.Add(day))
		var zero kernel.Period

		_, err := p.Overlaps(zero)

		require.Error(t, err)
	})
}

func TestPeriod_IsEqual(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("equal bounds make interchangeable periods", func(t *testing.T) {
		p1 := mustPeriod(t, base, base.Add(time.Hour))
		p2 := mustPeriod(t, base, base.Add(time.Hour))

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different bounds are not equal", func(t *testing.T) {
		p1 := mustPeriod(t, base, base.Add(time.Hour))
		p2 := mustPeriod(t, base, base.Add(2*time.Hour))

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}

func TestPeriod_StartsAfter(t *testing.T) {
	base := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	p := mustPeriod(t, base, base.Add(time.Hour))

	assert.True(t, p.StartsAfter(base.Add(-time.Minute)))
	assert.False(t, p.StartsAfter(base))
	assert.False(t, p.StartsAfter(base.Add(time.Minute)))
}
