package update_appointment_status

import (
	"time"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // PENDING | COMPLETED | CANCELLED
}

// AppointmentStatusResponse HTTP response model
type AppointmentStatusResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromAppointment конвертирует доменную модель в HTTP response
func FromAppointment(appt *domain.Appointment) *AppointmentStatusResponse {
	return &AppointmentStatusResponse{
		ID:        appt.ID.String(),
		Status:    string(appt.Status),
		UpdatedAt: appt.UpdatedAt.Format(time.RFC3339),
	}
}
