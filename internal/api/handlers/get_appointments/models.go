package get_appointments

import (
	"time"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	"github.com/barberbook/BarberBook-AvailabilityService/internal/service/appointments/models"
)

// AppointmentItem один элемент списка записей
type AppointmentItem struct {
	ID              string  `json:"id"`
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
}

// AppointmentsListResponse страница записей барбершопа
type AppointmentsListResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Total        int64             `json:"total"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
}

// FromListResult конвертирует результат сервиса в HTTP response
func FromListResult(result *models.ListResult) *AppointmentsListResponse {
	items := make([]AppointmentItem, 0, len(result.Appointments))
	for _, appt := range result.Appointments {
		items = append(items, AppointmentItem{
			ID:              appt.ID.String(),
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
		})
	}

	return &AppointmentsListResponse{
		Appointments: items,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
	}
}
