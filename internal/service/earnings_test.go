package service

import (
	"testing"
	"time"

	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

func TestProjectEarnings_WeekdayScenario(t *testing.T) {
	got, err := ProjectEarnings(EarningsInput{
		Rate:       6,
		SpotCount:  2,
		ActiveDays: weekdays,
		Start:      "09:00",
		End:        "17:00",
	})
	require.NoError(t, err)

	assert.InDelta(t, 8, got.DailyHours, 1e-9)
	assert.InDelta(t, 96, got.Daily, 1e-9)
	assert.InDelta(t, 480, got.Weekly, 1e-9)
	assert.InDelta(t, 2078.4, got.Monthly, 1e-6)
	assert.InDelta(t, 24940.8, got.Yearly, 1e-6)
}

func TestProjectEarnings_OvernightWindow(t *testing.T) {
	got, err := ProjectEarnings(EarningsInput{Rate: 1, SpotCount: 1, ActiveDays: weekdays, Start: "22:00", End: "02:00"})
	require.NoError(t, err)
	assert.InDelta(t, 4, got.DailyHours, 1e-9)
	assert.InDelta(t, 4, got.Daily, 1e-9)
}

func TestProjectEarnings_EmptyWindowIsZero(t *testing.T) {
	got, err := ProjectEarnings(EarningsInput{Rate: 10, SpotCount: 3, ActiveDays: weekdays, Start: "10:00", End: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, EarningsProjection{}, got)
}

func TestProjectEarnings_DuplicateDaysCountOnce(t *testing.T) {
	got, err := ProjectEarnings(EarningsInput{
		Rate:       5,
		SpotCount:  1,
		ActiveDays: []time.Weekday{time.Monday, time.Monday, time.Friday},
		Start:      "08:00",
		End:        "10:00",
	})
	require.NoError(t, err)
	assert.InDelta(t, 20, got.Weekly, 1e-9)
}

func TestProjectEarnings_Monotonic(t *testing.T) {
	base := EarningsInput{Rate: 4, SpotCount: 2, ActiveDays: weekdays[:3], Start: "07:30", End: "19:00"}
	baseline, err := ProjectEarnings(base)
	require.NoError(t, err)

	bumps := map[string]EarningsInput{
		"rate":   {Rate: 5, SpotCount: 2, ActiveDays: weekdays[:3], Start: base.Start, End: base.End},
		"spots":  {Rate: 4, SpotCount: 3, ActiveDays: weekdays[:3], Start: base.Start, End: base.End},
		"days":   {Rate: 4, SpotCount: 2, ActiveDays: weekdays, Start: base.Start, End: base.End},
		"nochng": base,
	}
	for name, in := range bumps {
		t.Run(name, func(t *testing.T) {
			got, err := ProjectEarnings(in)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Daily, baseline.Daily)
			assert.GreaterOrEqual(t, got.Weekly, baseline.Weekly)
			assert.GreaterOrEqual(t, got.Monthly, baseline.Monthly)
			assert.GreaterOrEqual(t, got.Yearly, baseline.Yearly)
		})
	}
}

func TestProjectEarnings_Validation(t *testing.T) {
	tests := map[string]EarningsInput{
		"negative rate": {Rate: -1, SpotCount: 1, Start: "09:00", End: "10:00"},
		"no spots":      {Rate: 1, SpotCount: 0, Start: "09:00", End: "10:00"},
		"bad start":     {Rate: 1, SpotCount: 1, Start: "nine", End: "10:00"},
		"bad end":       {Rate: 1, SpotCount: 1, Start: "09:00", End: "25:00"},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ProjectEarnings(in)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
