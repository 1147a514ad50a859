package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.Schedule, error)
	Upsert(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
}

// CatalogRepository интерфейс справочника барбершопов
type CatalogRepository interface {
	GetBarbershop(ctx context.Context, id uuid.UUID) (*domain.Barbershop, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
