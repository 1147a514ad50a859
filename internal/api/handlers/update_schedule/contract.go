package update_schedule

import (
	"context"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertRequest) (*domain.Schedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
