package models

import (
	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// UpsertRequest запрос на создание/обновление расписания барбершопа
type UpsertRequest struct {
	UserID       uuid.UUID        // ID владельца (из X-User-ID)
	BarbershopID uuid.UUID        // ID барбершопа
	DaysOfWeek   []int            // Рабочие дни недели (0-6, 0 = воскресенье)
	OpenTime     types.TimeString // Время открытия, "HH:MM"
	CloseTime    types.TimeString // Время закрытия, "HH:MM"
	Breaks       []BreakInput     // Перерывы
}

// BreakInput перерыв в рабочем дне
type BreakInput struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
