package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	createAppointment "github.com/barberbook/BarberBook-AvailabilityService/internal/usecase/create_appointment"
	"github.com/barberbook/BarberBook-AvailabilityService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarbershopID  string `json:"barbershopId"`
	EmployeeID    string `json:"employeeId"`
	ServiceID     string `json:"serviceId"`
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	BarbershopID    string  `json:"barbershopId"`
	EmployeeID      string  `json:"employeeId"`
	ServiceID       string  `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientContact   string  `json:"clientContact"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID uuid.UUID) (*createAppointment.Request, error) {
	barbershopID, err := uuid.Parse(r.BarbershopID)
	if err != nil {
		return nil, err
	}
	employeeID, err := uuid.Parse(r.EmployeeID)
	if err != nil {
		return nil, err
	}
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:        userID,
		BarbershopID:  barbershopID,
		EmployeeID:    employeeID,
		ServiceID:     serviceID,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromAppointment конвертирует доменную модель в HTTP response
func FromAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID.String(),
		BarbershopID:    appt.BarbershopID.String(),
		EmployeeID:      appt.EmployeeID.String(),
		ServiceID:       appt.ServiceID.String(),
		ClientName:      appt.ClientName,
		ClientContact:   appt.ClientContact,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
