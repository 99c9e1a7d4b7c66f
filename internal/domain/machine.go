package domain

import "time"

type MachineStatus string

const (
	MachineStatusAvailable   MachineStatus = "available"
	MachineStatusRented      MachineStatus = "rented"
	MachineStatusMaintenance MachineStatus = "maintenance"
)

// Machine is a rentable piece of equipment in the catalog, organized by
// category, work phase and application. Weekly and monthly rates are optional;
// when zero, estimates fall back to multiples of the daily rate.
type Machine struct {
	ID               string        `json:"id"`
	OwnerID          string        `json:"owner_id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	WorkPhase        string        `json:"work_phase"`
	Application      string        `json:"application"`
	Description      string        `json:"description"`
	DailyRateCents   int32         `json:"daily_rate_cents"`
	WeeklyRateCents  int32         `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents int32         `json:"monthly_rate_cents,omitempty"`
	Status           MachineStatus `json:"status"`
	ImageURL         string        `json:"image_url,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}
