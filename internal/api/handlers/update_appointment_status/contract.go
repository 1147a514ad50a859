package update_appointment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, userID, appointmentID uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
