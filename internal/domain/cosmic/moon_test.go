//go:build unit

package cosmic_test

import (
	"testing"
	"time"

	"cosmic-courier/internal/domain/cosmic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMoonPhase(t *testing.T) {
	testCases := []struct {
		name          string
		ageDays       float64
		month         time.Month
		expectedName  string
		expectedPrio  int
		isSignificant bool
	}{
		{name: "new moon at zero", ageDays: 0, month: time.June, expectedName: "New Moon", expectedPrio: 10, isSignificant: true},
		{name: "new moon upper edge", ageDays: 0.499, month: time.June, expectedName: "New Moon", expectedPrio: 10, isSignificant: true},
		{name: "waxing crescent just past new", ageDays: 0.5, month: time.June, expectedName: "Waxing Crescent", expectedPrio: 2},
		{name: "first quarter lower edge", ageDays: 7.2, month: time.June, expectedName: "First Quarter", expectedPrio: 10, isSignificant: true},
		{name: "first quarter upper edge", ageDays: 7.6, month: time.June, expectedName: "First Quarter", expectedPrio: 10, isSignificant: true},
		{name: "waxing gibbous after first quarter", ageDays: 7.601, month: time.June, expectedName: "Waxing Gibbous", expectedPrio: 2},
		{name: "full moon in april is pink", ageDays: 15.0, month: time.April, expectedName: "Pink Moon", expectedPrio: 10, isSignificant: true},
		{name: "full moon in january is wolf", ageDays: 14.5, month: time.January, expectedName: "Wolf Moon", expectedPrio: 10, isSignificant: true},
		{name: "waning gibbous after full", ageDays: 15.501, month: time.April, expectedName: "Waning Gibbous", expectedPrio: 2},
		{name: "last quarter lower edge", ageDays: 22.0, month: time.June, expectedName: "Last Quarter", expectedPrio: 10, isSignificant: true},
		{name: "last quarter upper edge", ageDays: 22.4, month: time.June, expectedName: "Last Quarter", expectedPrio: 10, isSignificant: true},
		{name: "waning crescent at cycle end", ageDays: 29.5, month: time.June, expectedName: "Waning Crescent", expectedPrio: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := cosmic.ClassifyMoonPhase(tc.ageDays, 50, tc.month)
			assert.Equal(t, tc.expectedName, r.Name)
			assert.Equal(t, tc.expectedPrio, r.Priority)
			assert.Equal(t, tc.isSignificant, r.IsSignificant)
			assert.Equal(t, tc.ageDays, r.AgeDays)
		})
	}
}

// Every age in [0, SynodicMonthDays) must map to exactly one phase; the
// windows may not leave gaps around their shared boundaries.
func TestClassifyMoonPhase_Partition(t *testing.T) {
	boundaries := []float64{0, 0.5, 7.2, 7.6, 14.5, 15.5, 22.0, 22.4}

	var probes []float64
	for age := 0.0; age < cosmic.SynodicMonthDays; age += 0.01 {
		probes = append(probes, age)
	}
	for _, b := range boundaries {
		probes = append(probes, b-1e-9, b, b+1e-9)
	}

	for _, age := range probes {
		if age < 0 || age >= cosmic.SynodicMonthDays {
			continue
		}
		r := cosmic.ClassifyMoonPhase(age, 50, time.June)
		require.NotEmpty(t, r.Name, "age %.6f produced no phase", age)
		if r.IsSignificant {
			require.Equal(t, 10, r.Priority, "age %.6f", age)
		} else {
			require.Equal(t, 2, r.Priority, "age %.6f", age)
		}
	}
}

func TestMoonAgeDays(t *testing.T) {
	assert.InDelta(t, 0, cosmic.MoonAgeDays(0), 1e-9)
	assert.InDelta(t, cosmic.SynodicMonthDays/2, cosmic.MoonAgeDays(180), 1e-9)
	assert.InDelta(t, cosmic.SynodicMonthDays/4, cosmic.MoonAgeDays(90), 1e-9)
}

func TestMoonEvent(t *testing.T) {
	t.Run("significant phase becomes an event", func(t *testing.T) {
		r := cosmic.ClassifyMoonPhase(15.0, 99, time.April)
		e, ok := cosmic.MoonEvent(r)
		require.True(t, ok)
		assert.Equal(t, "Pink Moon", e.Name)
		assert.Equal(t, cosmic.EventMoon, e.Type)
		assert.Equal(t, 10, e.Priority)
	})

	t.Run("ordinary phase is silent", func(t *testing.T) {
		r := cosmic.ClassifyMoonPhase(3.0, 10, time.April)
		_, ok := cosmic.MoonEvent(r)
		assert.False(t, ok)
	})
}

func TestFullMoonName(t *testing.T) {
	assert.Equal(t, "Pink Moon", cosmic.FullMoonName(time.April))
	assert.Equal(t, "Cold Moon", cosmic.FullMoonName(time.December))
	assert.Equal(t, "Full Moon", cosmic.FullMoonName(time.Month(0)))
}
