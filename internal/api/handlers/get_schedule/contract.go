package get_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

type ScheduleService interface {
	Get(ctx context.Context, userID, barbershopID uuid.UUID) (*domain.Schedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
