package get_schedule

import (
	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// BreakItem перерыв в рабочем дне
type BreakItem struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID           string      `json:"id"`
	BarbershopID string      `json:"barbershopId"`
	DaysOfWeek   []int       `json:"daysOfWeek"`
	OpenTime     string      `json:"openTime"`
	CloseTime    string      `json:"closeTime"`
	Breaks       []BreakItem `json:"breaks"`
}

// FromSchedule конвертирует доменную модель в HTTP response
func FromSchedule(schedule *domain.Schedule) *ScheduleResponse {
	breaks := make([]BreakItem, 0, len(schedule.Breaks))
	for _, brk := range schedule.Breaks {
		breaks = append(breaks, BreakItem{
			StartTime: brk.StartTime.String(),
			EndTime:   brk.EndTime.String(),
		})
	}

	return &ScheduleResponse{
		ID:           schedule.ID.String(),
		BarbershopID: schedule.BarbershopID.String(),
		DaysOfWeek:   schedule.DaysOfWeek,
		OpenTime:     schedule.OpenTime.String(),
		CloseTime:    schedule.CloseTime.String(),
		Breaks:       breaks,
	}
}
