package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        uuid.UUID        // ID владельца (из X-User-ID)
	BarbershopID  uuid.UUID        // ID барбершопа
	EmployeeID    uuid.UUID        // ID сотрудника
	ServiceID     uuid.UUID        // ID услуги
	ClientName    string           // Имя клиента
	ClientContact string           // Контакт клиента (телефон)
	Date          time.Time        // День записи (без времени)
	StartTime     types.TimeString // Время начала, "HH:MM"
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
