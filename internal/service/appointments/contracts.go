package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	ListByBarbershop(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error)
}

// CatalogRepository интерфейс справочника барбершопов
type CatalogRepository interface {
	GetBarbershop(ctx context.Context, id uuid.UUID) (*domain.Barbershop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
