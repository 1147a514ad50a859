package update_schedule

import (
	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/schedule/models"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// BreakInput перерыв в рабочем дне
type BreakInput struct {
	StartTime string `json:"startTime"` // "12:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	DaysOfWeek []int        `json:"daysOfWeek"` // 0-6, 0 = воскресенье
	OpenTime   string       `json:"openTime"`   // "09:00"
	CloseTime  string       `json:"closeTime"`  // "18:00"
	Breaks     []BreakInput `json:"breaks"`
}

// BreakItem перерыв в HTTP response
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *UpdateScheduleRequest) ToServiceRequest(userID, barbershopID uuid.UUID) (*models.UpsertRequest, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	breaks := make([]models.BreakInput, 0, len(r.Breaks))
	for _, brk := range r.Breaks {
		startTime, err := types.NewTimeStringFromString(brk.StartTime)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromString(brk.EndTime)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, models.BreakInput{
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	return &models.UpsertRequest{
		UserID:       userID,
		BarbershopID: barbershopID,
		DaysOfWeek:   r.DaysOfWeek,
		OpenTime:     openTime,
		CloseTime:    closeTime,
		Breaks:       breaks,
	}, nil
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
