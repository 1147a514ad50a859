package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarbershopID uuid.UUID // ID барбершопа
	EmployeeID   uuid.UUID // ID сотрудника
	ServiceID    uuid.UUID // ID услуги
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	BarbershopID    uuid.UUID          // ID барбершопа
	EmployeeID      uuid.UUID          // ID сотрудника
	ServiceID       uuid.UUID          // ID услуги
	DurationMinutes int                // Длительность услуги
	AvailableSlots  []types.TimeString // Времена начала по возрастанию, "HH:MM"
}
