package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// Schedule represents the weekly working hours of a barbershop.
// DaysOfWeek holds the active weekdays (0-6, 0 = Sunday); breaks are
// recurring sub-intervals of the open/close window during which no
// appointment may start or run.
type Schedule struct {
	ID           uuid.UUID
	BarbershopID uuid.UUID
	DaysOfWeek   []int
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	Breaks       []Break
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Break represents a recurring break interval within working hours
type Break struct {
	ID         uuid.UUID
	ScheduleID uuid.UUID
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// IsWorkingDay returns true if the barbershop works on the given weekday
func (s *Schedule) IsWorkingDay(weekday time.Weekday) bool {
	for _, day := range s.DaysOfWeek {
		if day == int(weekday) {
			return true
		}
	}
	return false
}
