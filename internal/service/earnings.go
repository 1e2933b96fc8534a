package service

import (
	"fmt"
	"time"

	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/ValetTech/Valet/internal/utils"
)

// weeksPerMonth is the mean number of weeks in a month.
const weeksPerMonth = 4.33

type EarningsInput struct {
	Rate       float64 // currency units per hour
	SpotCount  int
	ActiveDays []time.Weekday
	Start      string // "HH:MM"
	End        string // "HH:MM"
}

type EarningsProjection struct {
	DailyHours float64 `json:"dailyHours"`
	Daily      float64 `json:"daily"`
	Weekly     float64 `json:"weekly"`
	Monthly    float64 `json:"monthly"`
	Yearly     float64 `json:"yearly"`
}

// ProjectEarnings projects host revenue from rate and availability. It has no side
// effects: the same input always yields the same projection.
func ProjectEarnings(in EarningsInput) (EarningsProjection, error) {
	if in.Rate < 0 {
		return EarningsProjection{}, fmt.Errorf("rate must not be negative: %w", apperrors.ErrValidation)
	}
	if in.SpotCount < 1 {
		return EarningsProjection{}, fmt.Errorf("spot count must be at least 1: %w", apperrors.ErrValidation)
	}
	start, err := utils.ParseTimeOfDay(in.Start)
	if err != nil {
		return EarningsProjection{}, err
	}
	end, err := utils.ParseTimeOfDay(in.End)
	if err != nil {
		return EarningsProjection{}, err
	}

	hours := utils.WindowHours(start, end)
	if hours <= 0 {
		return EarningsProjection{}, nil
	}

	days := make(map[time.Weekday]struct{}, len(in.ActiveDays))
	for _, d := range in.ActiveDays {
		days[d] = struct{}{}
	}

	daily := float64(in.SpotCount) * in.Rate * hours
	weekly := daily * float64(len(days))
	monthly := weekly * weeksPerMonth
	return EarningsProjection{
		DailyHours: hours,
		Daily:      daily,
		Weekly:     weekly,
		Monthly:    monthly,
		Yearly:     monthly * 12,
	}, nil
}
