package utils

import (
	"fmt"
	"time"

	"locmaq-backend/internal/domain"
)

// RentalEstimate breaks an estimated rental cost into the tiers it was priced
// at. Cents throughout, matching the catalog rates.
type RentalEstimate struct {
	Months     int   `json:"months"`
	Weeks      int   `json:"weeks"`
	Days       int   `json:"days"`
	MonthsCost int32 `json:"months_cost_cents"`
	WeeksCost  int32 `json:"weeks_cost_cents"`
	DaysCost   int32 `json:"days_cost_cents"`
	TotalCost  int32 `json:"total_cost_cents"`
}

// SplitRentalPeriod breaks an inclusive rental period into whole calendar
// months plus leftover days. Both endpoints count: a one-day rental is
// (0 months, 1 day).
func SplitRentalPeriod(start, end time.Time) (months, days int, err error) {
	if end.Before(start) {
		return 0, 0, fmt.Errorf("end date must not be before start date")
	}

	years := end.Year() - start.Year()
	months = int(end.Month()) - int(start.Month())
	days = end.Day() - start.Day() + 1

	if days < 0 {
		months--
		prev := end.AddDate(0, -1, 0)
		days += daysInMonth(prev.Year(), prev.Month())
	}
	if months < 0 {
		years--
		months += 12
	}
	months += 12 * years
	return months, days, nil
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EstimateRentalCost prices an inclusive rental period against a machine's
// tiered rates: whole months at the monthly rate, whole weeks of the remainder
// at the weekly rate, leftover days at the daily rate. Missing weekly or
// monthly rates fall back to 7x and 30x the daily rate.
func EstimateRentalCost(m *domain.Machine, start, end time.Time) (RentalEstimate, error) {
	months, days, err := SplitRentalPeriod(start, end)
	if err != nil {
		return RentalEstimate{}, err
	}

	weeklyRate := m.WeeklyRateCents
	if weeklyRate == 0 {
		weeklyRate = 7 * m.DailyRateCents
	}
	monthlyRate := m.MonthlyRateCents
	if monthlyRate == 0 {
		monthlyRate = 30 * m.DailyRateCents
	}

	weeks := days / 7
	days = days % 7

	est := RentalEstimate{
		Months:     months,
		Weeks:      weeks,
		Days:       days,
		MonthsCost: int32(months) * monthlyRate,
		WeeksCost:  int32(weeks) * weeklyRate,
		DaysCost:   int32(days) * m.DailyRateCents,
	}
	est.TotalCost = est.MonthsCost + est.WeeksCost + est.DaysCost
	return est, nil
}
