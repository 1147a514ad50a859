package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// CatalogRepository интерфейс справочника услуг и сотрудников
type CatalogRepository interface {
	GetService(ctx context.Context, barbershopID, serviceID uuid.UUID) (*domain.Service, error)
	GetEmployee(ctx context.Context, barbershopID, employeeID uuid.UUID) (*domain.Employee, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.Schedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByEmployeeAndDate получает неотмененные записи сотрудника на день
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
