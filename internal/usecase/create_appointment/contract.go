package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// CatalogRepository интерфейс справочника барбершопов, услуг и сотрудников
type CatalogRepository interface {
	GetBarbershop(ctx context.Context, id uuid.UUID) (*domain.Barbershop, error)
	GetService(ctx context.Context, barbershopID, serviceID uuid.UUID) (*domain.Service, error)
	GetEmployee(ctx context.Context, barbershopID, employeeID uuid.UUID) (*domain.Employee, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.Schedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
